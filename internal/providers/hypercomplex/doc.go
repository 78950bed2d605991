// Package hypercomplex exposes the Cayley-Dickson algebras as a tool
// provider.
//
// This package is organized into specialized modules:
//   - operations/arithmetic: construction, ring operations, rounding, basis units
//   - operations/functions: exp, ln, powers, trigonometric and hyperbolic functions
//   - codec: JSON, YAML and TOML value documents
//
// Every tool accepts optional "dimension" and "precision" parameters that
// select one of the algebras in package algebra. Invalid input is reported
// as a failed Result rather than a Go error.
//
// Example Usage:
//
//	p := hypercomplex.NewProvider(common.Defaults{})
//	result, err := p.Execute(ctx, "hypercomplex.multiply", map[string]interface{}{
//	    "a": "1+2i", "b": "1-2i",
//	}, nil)
package hypercomplex
