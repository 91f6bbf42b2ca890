package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/platinummonkey/habit-api/pkg/httputil"
	"github.com/platinummonkey/habit-api/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Server represents our API server
type Server struct {
	router   *mux.Router
	handler  http.Handler
	logger   logrus.FieldLogger
	registry *prometheus.Registry
	metrics  *observability.Metrics
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithRegistry sets the Prometheus registry metrics are registered on and served from
func WithRegistry(registry *prometheus.Registry) ServerOption {
	return func(s *Server) {
		s.registry = registry
	}
}

// NewServer creates a new API server
func NewServer(logger logrus.FieldLogger, opts ...ServerOption) *Server {
	s := &Server{
		router: mux.NewRouter(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = observability.NewMetrics(s.registry)

	s.setupRoutes()

	s.handler = httputil.Chain(
		httputil.RequestIDMiddleware,
		httputil.LoggingMiddleware(s.logger),
		httputil.RecoveryMiddleware(s.logger),
		observability.HTTPMetricsMiddleware(s.metrics, s.router),
	)(s.router)
	return s
}

// setupRoutes configures all the API routes. Resource routes are registered
// with full paths on the root router so a wrong method on a known path is
// answered with 405 rather than 404.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", observability.Liveness).Methods(http.MethodGet)
	s.router.Handle("/metrics", observability.MetricsHandler(s.registry)).Methods(http.MethodGet)

	s.RegisterRoutes(NewUserHandlers())
	s.RegisterRoutes(NewAuthHandlers())
	s.RegisterRoutes(NewHabitHandlers())
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// RouteRegistrar is an interface for types that can register routes
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// RegisterRoutes registers routes from a RouteRegistrar on the root router
func (s *Server) RegisterRoutes(registrar RouteRegistrar) {
	registrar.RegisterRoutes(s.router)
}

// AddrConfig is the part of the configuration the HTTP server needs
type AddrConfig interface {
	Addr() string
}

// NewHTTPServer wraps handler in an http.Server listening on the configured port
func NewHTTPServer(cfg AddrConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
