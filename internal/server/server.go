// Package server exposes the session registry over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/officehours/officehours/internal/apperr"
	"github.com/officehours/officehours/internal/clock"
	"github.com/officehours/officehours/internal/config"
	"github.com/officehours/officehours/internal/registry"
)

// Server serves the session API.
type Server struct {
	reg   *registry.Registry
	clock clock.Clock
	log   *slog.Logger
	cfg   config.ServerConfig
}

// New returns a Server backed by reg. Request times default to c.Now().
func New(
	reg *registry.Registry,
	c clock.Clock,
	cfg config.ServerConfig,
	log *slog.Logger,
) *Server {
	return &Server{
		reg:   reg,
		clock: c,
		cfg:   cfg,
		log:   log,
	}
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalid:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) wrap(h errorHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		status := statusOf(err)

		msg := err.Error()
		if status == http.StatusInternalServerError {
			s.log.ErrorContext(r.Context(), "request failed",
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)

			msg = http.StatusText(status)
		}

		s.writeJSON(w, status, errorResponse{Error: msg})
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("encoding response failed", slog.Any("error", err))
	}
}

// Handler returns the API routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /sessions", s.wrap(s.listSessions))
	mux.Handle("POST /sessions", s.wrap(s.createSession))
	mux.Handle("GET /sessions/{id}", s.wrap(s.getReport))
	mux.Handle("DELETE /sessions/{id}", s.wrap(s.deleteSession))
	mux.Handle("GET /sessions/{id}/events", s.wrap(s.listEvents))
	mux.Handle("POST /sessions/{id}/events", s.wrap(s.addEvent))

	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		began := time.Now()

		next.ServeHTTP(rec, r)

		s.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(began)),
		)
	})
}

// Run listens on the configured address until ctx is cancelled, then shuts
// the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.log.Info("server stopped")

	return nil
}
