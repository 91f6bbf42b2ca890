package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoggerConfig struct {
	level      string
	production bool
}

func (f fakeLoggerConfig) LogLevel() string      { return f.level }
func (f fakeLoggerConfig) IsProductionMode() bool { return f.production }

func TestNewLogger_ProductionModeUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(fakeLoggerConfig{level: "info", production: true}, &buf)

	logger.WithField("port", 3000).Info("server running")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server running", entry["msg"])
	assert.Equal(t, float64(3000), entry["port"])
}

func TestNewLogger_DevelopmentModeUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(fakeLoggerConfig{level: "debug"}, &buf)

	logger.Debug("hello")

	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(fakeLoggerConfig{level: "error"}, &buf)

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewDiagnosticLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDiagnosticLogger(&buf)

	logger.WithFields(logrus.Fields{"path": "PORT", "message": "Required"}).Error("invalid environment variable")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "PORT", entry["path"])
	assert.Equal(t, "Required", entry["message"])
	assert.Equal(t, "error", entry["level"])
}
