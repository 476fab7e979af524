// Package server exposes the shortest-path solver over HTTP.
//
// # Routes
//
//	POST /shortest_path  solve a query, reply with graph.Response JSON
//	POST /render         solve a query, reply with an SVG of the graph and path
//	GET  /healthz        liveness probe
//	GET  /version        build information
//	GET  /metrics        Prometheus metrics (when a gatherer is configured)
//	GET  /               interactive index page
//
// Query outcomes without a path (unknown node, unreachable target, negative
// cycle) are not HTTP errors: they reply 200 with an empty path and a status.
// Rejected requests reply with a JSON error body and a status from
// errors.HTTPStatus.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/pathfinder/pkg/solver"
)

// DefaultMaxBodyBytes bounds request bodies when Options.MaxBodyBytes is zero.
const DefaultMaxBodyBytes = 8 << 20

// Options configures a Server.
type Options struct {
	// Runner answers queries. Required.
	Runner *solver.Runner

	// Logger receives request logs. Nil uses log.Default().
	Logger *log.Logger

	// RequestTimeout bounds each request. Zero disables the timeout.
	RequestTimeout time.Duration

	// MaxBodyBytes bounds request bodies. Zero uses DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// Gatherer serves /metrics. Nil disables the route.
	Gatherer prometheus.Gatherer
}

// Server is the HTTP front end of a solver.Runner.
type Server struct {
	runner  *solver.Runner
	logger  *log.Logger
	maxBody int64
	router  chi.Router
}

// New builds a server and its routes.
func New(opts Options) *Server {
	s := &Server{
		runner:  opts.Runner,
		logger:  opts.Logger,
		maxBody: opts.MaxBodyBytes,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(instrument)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/shortest_path", s.handleShortestPath)
	r.Post("/render", s.handleRender)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully, giving in-flight requests up to shutdownTimeout to finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
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

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
