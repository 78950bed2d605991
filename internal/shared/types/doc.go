// Package types provides shared data structures for the hypercomplex service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool, Parameter: Tool specification
//   - Context: Execution context for tool calls
//   - Result: Standard tool result
//   - ExecuteRequest: HTTP tool execution request
//
// Example Usage:
//
//	result, err := provider.Execute(ctx, "hypercomplex.multiply", map[string]interface{}{
//	    "a": "1+2i+3j+4k",
//	    "b": []interface{}{1, 0, -2, -3},
//	}, &types.Context{})
package types
