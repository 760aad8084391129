package main

import (
	"os"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"go.hackfix.me/prefs/app"
	"go.hackfix.me/prefs/app/ctx"
)

func main() {
	a := app.New(
		app.WithFS(osfs.New()),
		app.WithEnv(osEnv{}),
		app.WithFDs(
			os.Stdin,
			colorable.NewColorable(os.Stdout),
			colorable.NewColorable(os.Stderr),
		),
		app.WithLogger(
			isatty.IsTerminal(os.Stdout.Fd()),
			isatty.IsTerminal(os.Stderr.Fd()),
		),
		app.WithExit(os.Exit),
		app.WithDefaultStore(),
	)

	a.FatalIfErrorf(a.Run(os.Args[1:]))
}

type osEnv struct{}

var _ ctx.Environment = osEnv{}

func (e osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (e osEnv) Set(key, val string) error {
	return os.Setenv(key, val)
}
