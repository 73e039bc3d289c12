package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"chatterbox_server/internal/chat"
	"chatterbox_server/internal/config"
)

// Start serves until ctx is cancelled, then shuts the listener down within
// the configured shutdown timeout.
func Start(ctx context.Context, cfg *config.Config, store chat.Store, log *slog.Logger) error {
	const op = "server.Start"

	srv := &http.Server{
		Addr:         cfg.BindAddr,
		Handler:      New(cfg, store, log),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	stop := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.BindAddr))
		stop <- srv.ListenAndServe()
	}()

	select {
	case err := <-stop:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
