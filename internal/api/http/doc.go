// Package http provides the REST handlers for the hypercomplex service.
//
// Endpoints:
//   - Health: / and /health
//   - Services: GET /services, POST /services/discover, POST /services/execute
//   - Algebras: GET /algebras
//   - Stats: GET /stats (JSON snapshot; Prometheus exposition lives at /metrics)
//
// Routing failures map to 400 (malformed tool ID or body) and 404 (unknown
// service). A tool that runs but rejects its input still answers 200 with
// success=false in the result body.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
