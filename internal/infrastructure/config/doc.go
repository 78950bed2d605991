// Package config loads service configuration from environment variables
// using kelseyhightower/envconfig.
//
// Variables:
//   - PORT, HOST: HTTP listener
//   - LOG_LEVEL, LOG_DEV: zap level; LOG_DEV switches to console output at debug level
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED: request limiter
//   - RATE_LIMIT_SCOPE: "client" (per IP) or "global"
//   - HC_DEFAULT_DIMENSION, HC_DEFAULT_PRECISION: algebra used when a call names none
//   - HC_TOLERANCE: agreement tolerance for imported documents
package config
