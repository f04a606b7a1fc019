// Package api implements the HTTP interface for Gridroute.
//
// The server exposes the solve pipeline over JSON: feasibility checks,
// full Hamiltonian path solves with road-grid output, and access to
// persisted solutions. All routes live under /api/v1 except the
// health endpoint.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridroute/pkg/pipeline"
)

// Server wires the solve pipeline to an HTTP listener.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	srv    *http.Server
}

// NewServer builds a server for the given runner.
// If logger is nil, the default logger is used.
func NewServer(addr string, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the configured route tree. Exposed separately so
// tests can drive it with httptest without opening a socket.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/parity", s.handleParity)
		r.Post("/roadgrid", s.handleRoadGrid)
		r.Get("/solutions", s.handleListSolutions)
		r.Get("/solutions/{id}", s.handleGetSolution)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request with method, path, status,
// and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
