package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"k8s.io/klog/v2"
)

func (app *application) newServer() *http.Server {
	return &http.Server{
		// No mux: a ServeMux would clean paths and redirect.
		Handler:           http.HandlerFunc(app.respond),
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func (app *application) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", app.config.Addr, err)
	}
	return ln, nil
}

// run binds the listener and serves until ctx is cancelled. A bind failure
// is returned before anything is logged as running.
func (app *application) run(ctx context.Context) error {
	ln, err := app.listen()
	if err != nil {
		return err
	}

	klog.Infof("Server running on port %d (environment %s, version %s, instance %s)",
		ln.Addr().(*net.TCPAddr).Port, app.config.Environment, app.config.Version, app.instanceID)

	return serve(ctx, app.newServer(), ln)
}

func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		klog.Info("Received termination signal, closing server")
		if err := srv.Close(); err != nil {
			return fmt.Errorf("failed to close server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	}
}
