package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dropDatabas3/eventkit/internal/observability/logger"
)

const shutdownTimeout = 10 * time.Second

// Serve levanta el server y lo apaga en forma graciosa cuando el contexto
// se cancela. Bloquea hasta que el server terminó.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("http server escuchando", logger.String("addr", addr))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return srv.Close()
	}
	return nil
}
