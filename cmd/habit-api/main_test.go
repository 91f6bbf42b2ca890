package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/platinummonkey/habit-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestRun_InvalidConfig(t *testing.T) {
	env := config.MapEnvironment{
		"APP_STAGE":    "production",
		"DATABASE_URL": "mysql://localhost/habits",
		"JWT_SECRET":   "short",
	}

	err := run(context.Background(), env, &bytes.Buffer{})

	var verr *config.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("DATABASE_URL"))
	assert.True(t, verr.Has("JWT_SECRET"))
}

func TestRun_ShutsDownOnContextCancel(t *testing.T) {
	port := freePort(t)
	env := config.MapEnvironment{
		"APP_STAGE":    "production",
		"PORT":         strconv.Itoa(port),
		"DATABASE_URL": "postgresql://localhost/habits",
		"JWT_SECRET":   "0123456789abcdef0123456789abcdef",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, env, &out))
	assert.Contains(t, out.String(), "server running on port: "+strconv.Itoa(port))
}

func TestReportError_ValidationError(t *testing.T) {
	var buf bytes.Buffer
	err := &config.ValidationError{Issues: []config.FieldError{
		{Path: "DATABASE_URL", Message: "Required"},
		{Path: "JWT_SECRET", Message: "Must be 32 chars long"},
	}}

	code := reportError(&buf, err)
	assert.Equal(t, 1, code)

	var paths []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if p, ok := entry["path"].(string); ok {
			paths = append(paths, p)
		}
	}
	assert.Equal(t, []string{"DATABASE_URL", "JWT_SECRET"}, paths)
}

func TestReportError_OtherError(t *testing.T) {
	var buf bytes.Buffer

	code := reportError(&buf, &config.LoadError{Op: "read", Path: ".env", Err: errors.New("permission denied")})

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "startup failed")
	assert.Contains(t, buf.String(), "permission denied")
}
