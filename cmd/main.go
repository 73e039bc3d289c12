package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chatterbox_server/internal/chat"
	"chatterbox_server/internal/config"
	"chatterbox_server/internal/server"
)

func main() {
	cfg := config.MustLoad()
	log := setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := chat.NewMemoryStore()
	if err := server.Start(ctx, cfg, store, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("server stopped", slog.Int("messages", store.Len()))
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "error":
		lvl = slog.LevelError
	case "warn":
		lvl = slog.LevelWarn
	case "debug":
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
