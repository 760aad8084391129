package app

import (
	"context"
	"log/slog"

	"go.hackfix.me/prefs/app/cli"
	actx "go.hackfix.me/prefs/app/ctx"
)

// App is the application.
type App struct {
	ctx *actx.Context

	Exit func(int)
}

// New initializes a new application.
func New(opts ...Option) *App {
	defaultCtx := &actx.Context{
		Ctx:    context.Background(),
		Logger: slog.Default(),
	}
	app := &App{ctx: defaultCtx, Exit: func(int) {}}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Run parses the given arguments and executes the selected command.
func (app *App) Run(args []string) error {
	c := &cli.CLI{}
	if err := c.Setup(args, app.Exit); err != nil {
		return err
	}

	return c.Run(app.ctx)
}

// FatalIfErrorf terminates the application with an error message if err != nil.
func (app *App) FatalIfErrorf(err error, args ...any) {
	if err != nil {
		app.ctx.Logger.Error(err.Error(), args...)
		app.Exit(1)
	}
}
