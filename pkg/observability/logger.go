package observability

import (
	"io"
	"os"

	"github.com/platinummonkey/habit-api/pkg/config"
	"github.com/sirupsen/logrus"
)

// LoggerConfig is the part of the application configuration the logger needs
type LoggerConfig interface {
	LogLevel() string
	IsProductionMode() bool
}

var _ LoggerConfig = (*config.Config)(nil)

// NewLogger creates a logrus logger writing to output (stdout when nil)
func NewLogger(cfg LoggerConfig, output io.Writer) *logrus.Logger {
	if output == nil {
		output = os.Stdout
	}

	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetLevel(ParseLevel(cfg.LogLevel()))

	if cfg.IsProductionMode() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// NewDiagnosticLogger returns a JSON logger for use before configuration is available
func NewDiagnosticLogger(output io.Writer) *logrus.Logger {
	if output == nil {
		output = os.Stdout
	}
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

// ParseLevel parses a log level name, falling back to info
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
