package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/platinummonkey/habit-api/pkg/api"
	"github.com/platinummonkey/habit-api/pkg/config"
	"github.com/platinummonkey/habit-api/pkg/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(context.Background(), config.OSEnvironment{}, os.Stdout); err != nil {
		os.Exit(reportError(os.Stdout, err))
	}
}

// run validates configuration, binds the listener and serves until ctx is
// cancelled or the process receives SIGINT/SIGTERM.
func run(ctx context.Context, env config.Environment, stdout io.Writer) error {
	cfg, err := config.Load(env)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg, stdout)
	logger.WithFields(logrus.Fields{
		"stage":         cfg.Stage(),
		"mode":          cfg.Mode(),
		"override_file": cfg.OverrideFile(),
	}).Debug("configuration loaded")

	server := api.NewServer(logger)
	httpServer := api.NewHTTPServer(cfg, server)

	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", httpServer.Addr, err)
	}
	logger.WithField("port", cfg.Port()).Infof("server running on port: %d", cfg.Port())

	sm := observability.NewShutdownManager(logger, httpServer, shutdownTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return sm.WaitForShutdown(gctx)
	})
	return g.Wait()
}

// reportError writes structured diagnostics for a startup failure and returns
// the process exit code.
func reportError(w io.Writer, err error) int {
	logger := observability.NewDiagnosticLogger(w)

	var verr *config.ValidationError
	if errors.As(err, &verr) {
		logger.WithField("count", len(verr.Issues)).Error("invalid environment variables")
		for _, issue := range verr.Issues {
			logger.WithFields(logrus.Fields{
				"path":    issue.Path,
				"message": issue.Message,
			}).Error("invalid environment variable")
		}
		return 1
	}

	logger.WithError(err).Error("startup failed")
	return 1
}
