// Package observability provides structured logging, Prometheus metrics, health
// checks and graceful shutdown.
//
// # Structured Logging
//
// Create logger from validated configuration:
//
//	logger := observability.NewLogger(cfg, os.Stdout)
//	logger.WithField("port", cfg.Port()).Info("server starting")
//
// Production runtime mode (NODE_ENV=production) emits JSON; other modes use the
// human readable text formatter.
//
// # Prometheus Metrics
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	handler := observability.HTTPMetricsMiddleware(metrics, router)(router)
//	router.Handle("/metrics", observability.MetricsHandler(registry))
//
// # Shutdown
//
//	sm := observability.NewShutdownManager(logger, server, 30*time.Second)
//	err := sm.WaitForShutdown(ctx)
//
// # Related Packages
//
//   - pkg/config: log level and runtime mode
//   - pkg/httputil: request logging middleware
package observability
