package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	addr := net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.gin,
		ReadTimeout:       srv.readTimeout,
		ReadHeaderTimeout: srv.readTimeout,
		WriteTimeout:      srv.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.logger.Infof(ctx, "HTTP server started on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("internal.httpserver.Run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.logger.Info(context.Background(), "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("internal.httpserver.Run: shutdown: %w", err)
	}
	return nil
}
