// Package server exposes the recognizer over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness and build information
//	POST /v1/resolve            {"labels", "matrix", "trace", "refresh"} → result
//	POST /v1/check              {"labels", "matrix", "permutation"} → robinson + violation
//	POST /v1/trace?format=svg   {"labels", "matrix"} → decomposition tree (svg or dot)
//
// Every response carries an X-Request-ID header, echoed from the request
// when present. Errors are JSON objects {"error": {"code", "message"}} with
// INVALID_* codes mapped to 400, FILE_NOT_FOUND and NOT_FOUND to 404,
// UNSUPPORTED to 415, and everything else to 500.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/robinson/pkg/pipeline"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 64 << 20

// Server is the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server resolving through runner. A nil logger uses
// log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Post("/check", s.handleCheck)
		r.Post("/trace", s.handleTrace)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no route for "+r.Method+" "+r.URL.Path)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, waiting up to ten seconds for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
