// Package api - Thin HTTP layer over the recommendation engine
// The API is ONLY responsible for: input decoding, validation, engine calls, persistence and serialization.
// The API NEVER scores services itself.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aws-recommender/adapters/storage"
	"aws-recommender/core/engine"
	"aws-recommender/internal/config"
)

// Options configures a Server
type Options struct {
	Version       string
	Engine        *engine.Engine
	Slots         *storage.Slots
	Config        config.ServerConfig
	RestoreWindow time.Duration
}

// Server is the API server
type Server struct {
	handler *Handler
	router  chi.Router
	version string
	config  config.ServerConfig
	started time.Time
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	s := &Server{
		handler: NewHandler(opts.Engine, opts.Slots, opts.RestoreWindow),
		router:  chi.NewRouter(),
		version: opts.Version,
		config:  opts.Config,
		started: time.Now(),
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	r := s.router

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	if len(s.config.CORSOrigins) > 0 {
		r.Use(corsMiddleware(s.config.CORSOrigins))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, CodeNotFound, "no route for "+r.URL.Path, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, CodeMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
	})

	// Supporting endpoints
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Handle("/metrics", promhttp.Handler())

	// Core endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(s.config.RateLimitRequests, s.config.RateLimitWindow))

		r.Post("/recommendations", s.handler.Recommend)
		r.Post("/recommendations/explain", s.handler.Explain)
		r.Get("/recommendations/last", s.handler.Last)
		r.Get("/recommendations/last/export", s.handler.Export)

		r.Get("/catalog", s.handler.Catalog)
		r.Get("/catalog/{name}", s.handler.Service)
		r.Get("/criteria", s.handler.Criteria)

		r.Get("/preferences/theme", s.handler.GetTheme)
		r.Put("/preferences/theme", s.handler.PutTheme)
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":   "healthy",
		"version":  s.version,
		"services": s.handler.engine.Catalog().Len(),
		"uptime":   time.Since(s.started).Round(time.Second).String(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "aws-recommender",
		"api_version": "v1",
	}, http.StatusOK)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer returns an http.Server for the configured address and timeouts
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.config.WriteTimeout,
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := s.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
