package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Algebra   AlgebraConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Rate limit scopes.
const (
	ScopeClient = "client"
	ScopeGlobal = "global"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int    `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int    `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool   `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Scope             string `envconfig:"RATE_LIMIT_SCOPE" default:"client"`
}

// AlgebraConfig selects the algebra used when a request names none.
type AlgebraConfig struct {
	Dimension int     `envconfig:"HC_DEFAULT_DIMENSION" default:"2"`
	Precision int     `envconfig:"HC_DEFAULT_PRECISION" default:"64"`
	Tolerance float64 `envconfig:"HC_TOLERANCE" default:"1e-9"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
			Scope:             ScopeClient,
		},
		Algebra: AlgebraConfig{
			Dimension: 2,
			Precision: 64,
			Tolerance: 1e-9,
		},
	}
}

// Validate rejects settings the service cannot honor.
func (c *Config) Validate() error {
	if _, err := algebra.Lookup(c.Algebra.Dimension, c.Algebra.Precision); err != nil {
		return fmt.Errorf("invalid default algebra: %w", err)
	}
	if c.Algebra.Tolerance < 0 {
		return fmt.Errorf("invalid tolerance %g: must not be negative", c.Algebra.Tolerance)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit %d/s burst %d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	if c.RateLimit.Scope != ScopeClient && c.RateLimit.Scope != ScopeGlobal {
		return fmt.Errorf("invalid rate limit scope %q: must be %q or %q", c.RateLimit.Scope, ScopeClient, ScopeGlobal)
	}
	return nil
}
