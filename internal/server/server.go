package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"chatterbox_server/internal/chat"
	"chatterbox_server/internal/config"

	"github.com/gorilla/mux"
)

const messagesPath = "/classes/messages"

type Server struct {
	router       *mux.Router
	handler      http.Handler
	logger       *slog.Logger
	store        chat.Store
	maxBodyBytes int64
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

const defaultMaxBodyBytes = 1 << 20

func New(cfg *config.Config, store chat.Store, log *slog.Logger) *Server {
	maxBodyBytes := cfg.HTTP.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	s := &Server{
		router:       mux.NewRouter(),
		logger:       log,
		store:        store,
		maxBodyBytes: maxBodyBytes,
	}
	s.configureRouter()

	// CORS wraps the router itself: mux does not run middlewares for its
	// NotFound and MethodNotAllowed handlers.
	var h http.Handler = s.router
	h = recoverPanics(s.logger, h)
	h = withCORS(corsHeaders(cfg.CORS.AllowOrigin, cfg.CORS.MaxAge), h)
	h = logRequests(s.logger, h)
	s.handler = setRequestID(h)
	return s
}

func (s *Server) configureRouter() {
	// Unclean paths must 404 instead of redirecting.
	s.router.SkipClean(true)
	s.router.NotFoundHandler = s.notFound(ErrRouteNotFound)
	s.router.MethodNotAllowedHandler = s.notFound(ErrMethodNotSupported)

	s.router.HandleFunc(messagesPath, s.ListMessages()).Methods(http.MethodGet)
	s.router.HandleFunc(messagesPath, s.CreateMessage()).Methods(http.MethodPost)
	s.router.HandleFunc(messagesPath, s.Options()).Methods(http.MethodOptions)
}

func (s *Server) ListMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages := s.store.List()
		if messages == nil {
			messages = []chat.Message{}
		}
		s.respond(w, http.StatusOK, messages)
	}
}

func (s *Server) CreateMessage() http.HandlerFunc {
	type request struct {
		Username string `json:"username"`
		Text     string `json:"text"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "server.CreateMessage"

		body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		dec := json.NewDecoder(body)
		var req *request
		err := dec.Decode(&req)
		if err == nil && req == nil {
			err = errNotObject
		}
		if err == nil {
			// The body must hold exactly one value.
			if extra := dec.Decode(&json.RawMessage{}); extra != io.EOF {
				err = errTrailingData
				if extra != nil {
					err = fmt.Errorf("%w: %w", errTrailingData, extra)
				}
			}
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.error(w, r, http.StatusRequestEntityTooLarge, fmt.Errorf("%s: %w: %w", op, ErrMalformedBody, err))
				return
			}
			s.error(w, r, http.StatusBadRequest, fmt.Errorf("%s: %w: %w", op, ErrMalformedBody, err))
			return
		}

		msg := chat.Message{Username: req.Username, Text: req.Text}
		s.store.Append(msg)
		s.logger.Debug("message stored",
			slog.String("message", msg.String()),
			slog.String("request_id", requestID(r.Context())),
		)
		w.WriteHeader(http.StatusCreated)
	}
}

// Options answers with the methods the messages resource accepts.
func (s *Server) Options() http.HandlerFunc {
	allow := strings.Join(allowedMethods, ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Allow: " + allow))
	}
}

func (s *Server) notFound(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.error(w, r, http.StatusNotFound, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, err))
	}
}

// error logs err and answers with a JSON body naming the failure class.
func (s *Server) error(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.logger.Warn("request failed",
		slog.Int("status", code),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID(r.Context())),
	)
	s.respond(w, code, map[string]string{"error": publicMessage(err)})
}

func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// publicMessage hides wrapped details such as decoder errors from clients.
func publicMessage(err error) string {
	for _, known := range []error{ErrRouteNotFound, ErrMethodNotSupported, ErrMalformedBody} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
