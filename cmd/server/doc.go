// Package main is the entry point for the hypercomplex algebra server.
//
// The server exposes complex numbers, quaternions, octonions, sedenions and
// trigintaduonions as tools behind a small REST API.
//
// The server provides:
//   - Tool execution at POST /services/execute
//   - Tool discovery and service listing
//   - The list of supported algebras
//   - Prometheus metrics at /metrics
//
// Configuration:
//   - Environment variables (PORT, LOG_LEVEL, HC_DEFAULT_DIMENSION, ...)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Quaternions by default
//	./server -port 8000 -dimension 4
//
//	# Development mode (colored logs, debug level)
//	./server -dev -log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
