/*
Package monitoring provides Prometheus metrics for the hypercomplex service.

# Overview

Each Metrics value owns a private prometheus.Registry, so servers built in
tests never collide on the global default registry.

# Features

- HTTP request metrics (latency, throughput, size)
- Tool execution metrics (duration, failures)
- Executions per algebra
- Go runtime and process collectors
- JSON snapshot for the status API

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "hypercomplex", "hypercomplex.mul")
	// ... execute tool ...
	timer.Stop("success")
*/
package monitoring
