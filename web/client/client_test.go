package client

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/kv"
	"go.hackfix.me/prefs/store/memory"
	"go.hackfix.me/prefs/web/server"
)

// startTestServer serves the API over a local in-memory store, and returns
// a client connected to it.
func startTestServer(t *testing.T) (*Client, *memory.Memory) {
	t.Helper()

	s := memory.New()
	appCtx := &actx.Context{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  s,
	}

	srv := server.New(appCtx, "127.0.0.1:0")
	ln, err := net.Listen("tcp", srv.Addr)
	require.NoError(t, err)
	srv.Addr = ln.Addr().String()

	go srv.Serve(ln)
	t.Cleanup(func() { srv.Close() })

	c := New(srv.Addr)
	t.Cleanup(func() { c.Close() })

	return c, s
}

func TestClientStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, _ := startTestServer(t)

	t.Run("ok/get_set", func(t *testing.T) {
		_, ok, err := c.Get(ctx, "key")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, c.Set(ctx, "key", `{"theme":"dark"}`))

		val, ok, err := c.Get(ctx, "key")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"theme":"dark"}`, val)
	})

	t.Run("ok/contains_remove", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "key2", "value"))

		ok, err := c.ContainsKey(ctx, "key2")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, c.Remove(ctx, "key2"))
		// Idempotent.
		require.NoError(t, c.Remove(ctx, "key2"))

		ok, err = c.ContainsKey(ctx, "key2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ok/keys", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "app1.a", "1"))
		require.NoError(t, c.Set(ctx, "app1.b", "2"))
		require.NoError(t, c.Set(ctx, "app2.c", "3"))

		keys, err := c.Keys(ctx, "app1.")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"app1.a", "app1.b"}, keys)
	})

	t.Run("ok/clear", func(t *testing.T) {
		require.NoError(t, c.Clear(ctx))

		keys, err := c.Keys(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

// A remote store composes with the kv adapter the same way a local one
// does.
func TestClientWithNamespace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, s := startTestServer(t)

	ns, err := kv.NewNamespace("app1", c)
	require.NoError(t, err)

	require.NoError(t, ns.Set(ctx, "tags", kv.NewSet("go", "kv")))

	got, err := ns.Get(ctx, "tags")
	require.NoError(t, err)
	assert.Equal(t, kv.NewSet("go", "kv"), got)

	// The payload lands in the server-side store under the physical key.
	payload, ok, err := s.Get(ctx, "app1.tags")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"__type__":"set","values":["go","kv"]}`, payload)

	_, err = ns.Get(ctx, "absent")
	assert.EqualError(t, err, "key 'absent' doesn't exist in the 'app1' namespace")
}
