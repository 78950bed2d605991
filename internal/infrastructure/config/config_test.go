package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, ScopeClient, cfg.RateLimit.Scope)

	// Algebra config
	assert.Equal(t, 2, cfg.Algebra.Dimension)
	assert.Equal(t, 64, cfg.Algebra.Precision)
	assert.Equal(t, 1e-9, cfg.Algebra.Tolerance)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                 "9000",
		"HOST":                 "127.0.0.1",
		"LOG_LEVEL":            "debug",
		"LOG_DEV":              "true",
		"RATE_LIMIT_RPS":       "500",
		"RATE_LIMIT_BURST":     "1000",
		"RATE_LIMIT_ENABLED":   "false",
		"RATE_LIMIT_SCOPE":     "global",
		"HC_DEFAULT_DIMENSION": "8",
		"HC_DEFAULT_PRECISION": "32",
		"HC_TOLERANCE":         "1e-6",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, ScopeGlobal, cfg.RateLimit.Scope)
	assert.Equal(t, 8, cfg.Algebra.Dimension)
	assert.Equal(t, 32, cfg.Algebra.Precision)
	assert.Equal(t, 1e-6, cfg.Algebra.Tolerance)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "fast")
		_, err := Load()
		assert.Error(t, err)

		cfg := LoadOrDefault()
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unsupported algebra", func(t *testing.T) {
		t.Setenv("HC_DEFAULT_DIMENSION", "6")
		_, err := Load()
		assert.ErrorIs(t, err, algebra.ErrUnsupported)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"sedenion f32", func(c *Config) { c.Algebra.Dimension, c.Algebra.Precision = 16, 32 }, false},
		{"precision 16", func(c *Config) { c.Algebra.Precision = 16 }, true},
		{"negative tolerance", func(c *Config) { c.Algebra.Tolerance = -1 }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"zero burst disabled", func(c *Config) { c.RateLimit.Burst, c.RateLimit.Enabled = 0, false }, false},
		{"global scope", func(c *Config) { c.RateLimit.Scope = ScopeGlobal }, false},
		{"unknown scope", func(c *Config) { c.RateLimit.Scope = "tenant" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
