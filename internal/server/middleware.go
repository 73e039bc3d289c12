package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
)

type key int

const (
	ctxKeyRequestID key = iota
)

const headerRequestID = "X-Request-ID"

// setRequestID keeps a client supplied X-Request-ID or generates one. The id
// travels in the request context; the request headers are left untouched.
func setRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// logRequests emits one slog record per completed request. It must run
// inside setRequestID to see the id.
func logRequests(log *slog.Logger, next http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, p handlers.LogFormatterParams) {
		log.Info("request",
			slog.String("method", p.Request.Method),
			slog.String("path", p.URL.Path),
			slog.Int("status", p.StatusCode),
			slog.Int("size", p.Size),
			slog.Duration("duration", time.Since(p.TimeStamp)),
			slog.String("request_id", requestID(p.Request.Context())),
		)
	})
}

// recoveryLogger adapts slog to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	log *slog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered", slog.String("error", fmt.Sprint(v...)))
}

func recoverPanics(log *slog.Logger, next http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(false),
	)(next)
}
