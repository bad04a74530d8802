package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	pbhttp "github.com/fwojciec/pagebrief/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// and then drains in-flight requests.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return err
	}
	return c.Serve(deps, ln)
}

// Serve runs the API on ln until the context is canceled.
func (c *ServeCmd) Serve(deps *Dependencies, ln net.Listener) error {
	srv := &http.Server{
		Handler:           pbhttp.NewServer(deps.Analyzer, deps.Authenticator, deps.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		deps.Logger.Info("listening", "addr", ln.Addr().String(), "auth", deps.Authenticator != nil)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
