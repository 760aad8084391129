package kv

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Sets are stored as {"__type__": "set", "values": [...]}, since JSON has
// no native set type. On decode, any object of that exact shape is turned
// back into a Set, at any nesting depth. This means caller data that
// happens to use the same shape is also reinterpreted as a set; that
// matches the historical behavior of the stored format.
const (
	setTagField = "__type__"
	setTag      = "set"
	setValField = "values"
)

// Set is an unordered collection of unique values that survives a round
// trip through the store. Elements must be comparable; values decoded from
// JSON (strings, numbers, booleans and null) always are.
type Set map[any]struct{}

// NewSet returns a Set containing the given elements.
func NewSet(elems ...any) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether elem is an element of the set.
func (s Set) Contains(elem any) bool {
	_, ok := s[elem]
	return ok
}

// MarshalJSON encodes the set as a tagged object. Elements are sorted by
// their string form to keep the encoding deterministic.
func (s Set) MarshalJSON() ([]byte, error) {
	elems := make([]any, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(i, j int) bool {
		return fmt.Sprint(elems[i]) < fmt.Sprint(elems[j])
	})

	return json.Marshal(map[string]any{
		setTagField: setTag,
		setValField: elems,
	})
}

// encode serializes a value to its stored JSON payload.
func encode(value any) (string, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// decode parses a stored JSON payload, rebuilding tagged sets at any
// nesting depth.
func decode(payload string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, err
	}
	return restoreSets(value), nil
}

// restoreSets walks a decoded value tree, converting any object tagged as
// a set back into a Set.
func restoreSets(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if set, ok := taggedSet(v); ok {
			return set
		}
		for key, val := range v {
			v[key] = restoreSets(val)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = restoreSets(e)
		}
		return v
	}

	return value
}

// taggedSet converts an object of the tagged set shape into a Set. It
// refuses objects with extra fields, and objects whose elements aren't
// scalars, since those can't be set members.
func taggedSet(obj map[string]any) (Set, bool) {
	if len(obj) != 2 || obj[setTagField] != setTag {
		return nil, false
	}
	elems, ok := obj[setValField].([]any)
	if !ok {
		return nil, false
	}

	set := make(Set, len(elems))
	for _, e := range elems {
		switch e.(type) {
		case nil, bool, string, float64:
			set[e] = struct{}{}
		default:
			return nil, false
		}
	}

	return set, true
}
