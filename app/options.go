package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/lmittmann/tint"
	"github.com/mandelsoft/vfs/pkg/vfs"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/store"
	"go.hackfix.me/prefs/store/badger"
)

// Option is a function that allows configuring the application.
type Option func(*App)

// WithContext sets the main context of the application.
func WithContext(ctx context.Context) Option {
	return func(app *App) {
		app.ctx.Ctx = ctx
	}
}

// WithEnv sets the process environment used by the application.
func WithEnv(env actx.Environment) Option {
	return func(app *App) {
		app.ctx.Env = env
	}
}

// WithExit sets the function that stops the application.
func WithExit(fn func(int)) Option {
	return func(app *App) {
		app.Exit = fn
	}
}

// WithFDs sets the file descriptors used by the application.
func WithFDs(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(app *App) {
		app.ctx.Stdin = stdin
		app.ctx.Stdout = stdout
		app.ctx.Stderr = stderr
	}
}

// WithFS sets the filesystem used by the application.
func WithFS(fs vfs.FileSystem) Option {
	return func(app *App) {
		app.ctx.FS = fs
	}
}

// WithLogger initializes the logger used by the application.
func WithLogger(isStdoutTTY, isStderrTTY bool) Option {
	return func(app *App) {
		logger := slog.New(
			tint.NewHandler(app.ctx.Stderr, &tint.Options{
				Level:      slog.LevelInfo,
				NoColor:    !isStderrTTY,
				TimeFormat: "2006-01-02 15:04:05.000",
			}),
		)
		app.ctx.Logger = logger
		slog.SetDefault(logger)
	}
}

// WithStore sets the preference store used by the application.
func WithStore(s store.Store) Option {
	return func(app *App) {
		app.ctx.Store = s
	}
}

// WithDefaultStore opens the Badger preference store in the default data
// directory, which can be overridden with the PREFS_DATA_DIR environment
// variable.
func WithDefaultStore() Option {
	return func(app *App) {
		dataDir := app.ctx.Env.Get("PREFS_DATA_DIR")
		if dataDir == "" {
			dataDir = filepath.Join(xdg.DataHome, "prefs")
		}

		storePath := filepath.Join(dataDir, "store")
		err := app.ctx.FS.MkdirAll(storePath, 0o700)
		app.FatalIfErrorf(err)

		s, err := badger.Open(storePath)
		app.FatalIfErrorf(err)
		app.ctx.Store = s
	}
}
