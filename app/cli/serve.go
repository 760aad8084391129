package cli

import (
	"context"
	"time"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/web/server"
)

// Serve starts the web server.
type Serve struct {
	Address string `help:"[host]:port to listen on" default:":2020"`
}

// Run the serve command.
func (s *Serve) Run(appCtx *actx.Context) error {
	srv := server.New(appCtx, s.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-appCtx.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
