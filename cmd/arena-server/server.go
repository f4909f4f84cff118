package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/logging"
)

const shutdownGrace = 10 * time.Second

// serve runs srv until SIGINT/SIGTERM, then drains in-flight requests.
func serve(srv *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Hijacked replay sockets are not tracked by Shutdown; cancelling the
	// base context stops them through their request contexts.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	srv.BaseContext = func(net.Listener) context.Context { return baseCtx }

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	cancelBase()
	return srv.Shutdown(shutdownCtx)
}
