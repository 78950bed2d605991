package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/config"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/tracing"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Level = "error"
	if mutate != nil {
		mutate(cfg)
	}

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close(context.Background()) })
	return srv
}

func execute(t *testing.T, h http.Handler, body map[string]interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/services/execute", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Algebra.Dimension = 3
	_, err := NewServer(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Logging.Level = "chatty"
	_, err = NewServer(cfg)
	assert.Error(t, err)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t, nil)
	h := srv.Handler()

	for _, path := range []string{"/", "/health", "/services", "/algebras", "/stats"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get(tracing.TraceHeader))
		})
	}
}

func TestServerUsesConfiguredDefaultAlgebra(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.Algebra.Dimension = 4
		cfg.Algebra.Precision = 32
	})

	w, body := execute(t, srv.Handler(), map[string]interface{}{
		"tool_id": "hypercomplex.parse",
		"params":  map[string]interface{}{"text": "1+2i+3j+4k"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"], body)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "quaternion", data["algebra"])
	assert.Equal(t, 32.0, data["precision"])
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	h := srv.Handler()

	execute(t, h, map[string]interface{}{
		"tool_id": "hypercomplex.add",
		"params":  map[string]interface{}{"a": "1+1i", "b": "2-3i"},
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `hypercomplex_service_calls_total{service="hypercomplex",status="success",tool="hypercomplex.add"} 1`)
	assert.Contains(t, w.Body.String(), `hypercomplex_http_requests_total{method="POST",path="/services/execute",status="200"} 1`)
}

func TestServerRateLimit(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.RequestsPerSecond = 1
		cfg.RateLimit.Burst = 1
	})
	h := srv.Handler()

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestServerRateLimitScope(t *testing.T) {
	get := func(h http.Handler, remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	tests := []struct {
		name  string
		scope string
		want  int
	}{
		{"client scope isolates addresses", config.ScopeClient, http.StatusOK},
		{"global scope is shared", config.ScopeGlobal, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(cfg *config.Config) {
				cfg.RateLimit.RequestsPerSecond = 1
				cfg.RateLimit.Burst = 1
				cfg.RateLimit.Scope = tt.scope
			})
			h := srv.Handler()

			assert.Equal(t, http.StatusOK, get(h, "10.0.0.1:1234"))
			assert.Equal(t, tt.want, get(h, "10.0.0.2:1234"))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		logger, err := newLogger(config.LogConfig{Level: "info", Development: true})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("default level", func(t *testing.T) {
		logger, err := newLogger(config.LogConfig{})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("configured level", func(t *testing.T) {
		logger, err := newLogger(config.LogConfig{Level: "warn"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := newLogger(config.LogConfig{Level: "loud"})
		assert.Error(t, err)
	})
}
