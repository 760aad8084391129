package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value any
	}{
		{"null", nil},
		{"bool", true},
		{"number", float64(42)},
		{"float", 3.14},
		{"string", "hello"},
		{"sequence", []any{float64(1), "two", false, nil}},
		{"mapping", map[string]any{"a": float64(1), "b": "two"}},
		{"set", NewSet("python", "go")},
		{"empty_set", NewSet()},
		{"set_of_numbers", NewSet(float64(1), float64(2), float64(3))},
		{
			"nested",
			map[string]any{
				"tags":  NewSet("go", "kv"),
				"stats": map[string]any{"count": float64(5)},
				"list":  []any{NewSet("deep"), "plain"},
			},
		},
		{"set_in_sequence", []any{NewSet("a"), []any{NewSet("b")}}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload, err := encode(tc.value)
			require.NoError(t, err)

			decoded, err := decode(payload)
			require.NoError(t, err)
			assert.Equal(t, tc.value, decoded)
		})
	}
}

func TestCodecSetEncoding(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		// Element order in the payload must not depend on map iteration
		// order.
		for i := 0; i < 10; i++ {
			payload, err := encode(NewSet("c", "a", "b"))
			require.NoError(t, err)
			assert.Equal(t, `{"__type__":"set","values":["a","b","c"]}`, payload)
		}
	})

	t.Run("tagged_shape_is_reinterpreted", func(t *testing.T) {
		t.Parallel()

		// Caller data that happens to use the tagged shape becomes a set.
		decoded, err := decode(`{"__type__":"set","values":[1,2]}`)
		require.NoError(t, err)
		assert.Equal(t, NewSet(float64(1), float64(2)), decoded)
	})

	t.Run("extra_fields_stay_a_mapping", func(t *testing.T) {
		t.Parallel()

		decoded, err := decode(`{"__type__":"set","values":[],"other":1}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"__type__": "set",
			"values":   []any{},
			"other":    float64(1),
		}, decoded)
	})

	t.Run("non_array_values_stay_a_mapping", func(t *testing.T) {
		t.Parallel()

		decoded, err := decode(`{"__type__":"set","values":"nope"}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"__type__": "set",
			"values":   "nope",
		}, decoded)
	})

	t.Run("non_scalar_elements_stay_a_mapping", func(t *testing.T) {
		t.Parallel()

		decoded, err := decode(`{"__type__":"set","values":[{"a":1}]}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"__type__": "set",
			"values":   []any{map[string]any{"a": float64(1)}},
		}, decoded)
	})

	t.Run("nested_tags_are_restored", func(t *testing.T) {
		t.Parallel()

		decoded, err := decode(
			`{"outer":[{"inner":{"__type__":"set","values":["x"]}}]}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"outer": []any{map[string]any{"inner": NewSet("x")}},
		}, decoded)
	})
}

func TestSetContains(t *testing.T) {
	t.Parallel()

	s := NewSet("a", float64(1), nil)
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains(float64(1)))
	assert.True(t, s.Contains(nil))
	assert.False(t, s.Contains("b"))
}
