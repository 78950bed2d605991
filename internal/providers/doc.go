// Package providers holds the service providers registered with the service
// registry.
//
// Service providers expose capabilities through a standardized tool-based
// interface. Each lives in its own subpackage.
//
// Available Providers:
//   - Hypercomplex: Cayley-Dickson arithmetic, elementary functions and
//     document import/export
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	p := hypercomplex.NewProvider(common.Defaults{Dimension: 4})
//	result, err := p.Execute(ctx, "hypercomplex.multiply", params, appCtx)
package providers
