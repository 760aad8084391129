package app

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/store/memory"
)

type testApp struct {
	*App
	stdout, stderr *bytes.Buffer
	env            *mockEnv
}

func newTestApp(ctx context.Context) *testApp {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &mockEnv{env: map[string]string{}}

	app := New(
		WithContext(ctx),
		WithFDs(strings.NewReader(""), stdout, stderr),
		WithFS(memoryfs.New()),
		WithLogger(false, false),
		WithEnv(env),
		WithStore(memory.New()),
	)

	return &testApp{App: app, stdout: stdout, stderr: stderr, env: env}
}

// Run executes a single command, resetting the output buffers first so
// assertions only see the output of the last command.
func (ta *testApp) Run(args ...string) error {
	ta.stdout.Reset()
	ta.stderr.Reset()
	return ta.App.Run(args)
}

type mockEnv struct {
	mx  sync.RWMutex
	env map[string]string
}

var _ actx.Environment = &mockEnv{}

func (me *mockEnv) Get(key string) string {
	me.mx.RLock()
	defer me.mx.RUnlock()
	return me.env[key]
}

func (me *mockEnv) Set(key, val string) error {
	me.mx.Lock()
	defer me.mx.Unlock()
	me.env[key] = val
	return nil
}

func TestAppStore(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := newTestApp(ctx)

	t.Run("ok/set_get", func(t *testing.T) {
		err := app.Run("set", "key", "testvalue")
		require.NoError(t, err)

		err = app.Run("set", "count", "5")
		require.NoError(t, err)

		err = app.Run("get", "key")
		require.NoError(t, err)
		assert.Equal(t, "\"testvalue\"\n", app.stdout.String())

		err = app.Run("get", "count")
		require.NoError(t, err)
		assert.Equal(t, "5\n", app.stdout.String())
	})

	t.Run("ok/set_get_namespace", func(t *testing.T) {
		err := app.Run("set", "--namespace=dev", "key", "testvaluens")
		require.NoError(t, err)

		err = app.Run("get", "--namespace=dev", "key")
		require.NoError(t, err)
		assert.Equal(t, "\"testvaluens\"\n", app.stdout.String())
	})

	t.Run("ok/get_default", func(t *testing.T) {
		err := app.Run("get", "missingkey", "--default=42")
		require.NoError(t, err)
		assert.Equal(t, "42\n", app.stdout.String())
	})

	t.Run("ok/set_json", func(t *testing.T) {
		err := app.Run("set", "settings", `{"theme":"dark"}`)
		require.NoError(t, err)

		err = app.Run("get", "settings")
		require.NoError(t, err)
		assert.Equal(t, "{\"theme\":\"dark\"}\n", app.stdout.String())
	})

	t.Run("ok/ls", func(t *testing.T) {
		err := app.Run("ls")
		require.NoError(t, err)
		assert.Equal(t, "count\nkey\nsettings\n", app.stdout.String())

		err = app.Run("ls", "--namespace=dev")
		require.NoError(t, err)
		assert.Equal(t, "key\n", app.stdout.String())

		err = app.Run("ls", "k")
		require.NoError(t, err)
		assert.Equal(t, "key\n", app.stdout.String())

		err = app.Run("ls", "--all")
		require.NoError(t, err)
		out := app.stdout.String()
		assert.Contains(t, out, "NAMESPACE")
		assert.Contains(t, out, "default")
		assert.Contains(t, out, "dev")
		assert.Contains(t, out, "settings")
	})

	t.Run("ok/rm_ls", func(t *testing.T) {
		err := app.Run("rm", "settings")
		require.NoError(t, err)

		err = app.Run("ls")
		require.NoError(t, err)
		assert.Equal(t, "count\nkey\n", app.stdout.String())
	})

	t.Run("ok/clear", func(t *testing.T) {
		err := app.Run("clear")
		require.NoError(t, err)

		err = app.Run("ls")
		require.NoError(t, err)
		assert.Equal(t, "", app.stdout.String())

		// The dev namespace is untouched.
		err = app.Run("ls", "--namespace=dev")
		require.NoError(t, err)
		assert.Equal(t, "key\n", app.stdout.String())
	})

	t.Run("ok/clear_all", func(t *testing.T) {
		err := app.Run("clear", "--all")
		require.NoError(t, err)

		err = app.Run("ls", "--namespace=dev")
		require.NoError(t, err)
		assert.Equal(t, "", app.stdout.String())
	})

	t.Run("err/missing_key", func(t *testing.T) {
		err := app.Run("get", "missingkey")
		assert.EqualError(t, err, "key 'missingkey' doesn't exist in the 'default' namespace")
	})

	t.Run("err/invalid_namespace", func(t *testing.T) {
		err := app.Run("get", "--namespace=bad.ns", "key")
		assert.EqualError(t, err, "namespace name must not contain '.'")
	})
}
