// Package server wires configuration, logging, metrics, tracing, the service
// registry and the HTTP routes into a runnable server.
package server
