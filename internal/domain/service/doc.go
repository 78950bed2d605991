// Package service provides the registry that routes tool executions to
// service providers.
//
// A tool ID has the form "<service>.<tool>"; the part before the first dot
// selects the provider. Every execution is timed and counted in the
// monitoring metrics, and failures are logged at warn level.
//
// Example Usage:
//
//	registry := service.NewRegistry(logger, metrics)
//	registry.Register(hypercomplex.NewProvider(defaults))
//	services := registry.Discover("multiply quaternion", 5)
//	result, err := registry.Execute(ctx, "hypercomplex.multiply", params, appCtx)
package service
