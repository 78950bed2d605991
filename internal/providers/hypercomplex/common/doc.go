// Package common provides parameter extraction and result helpers shared by
// the hypercomplex tool modules.
//
// Operands may be given either as text in the algebra's notation
// ("1+2i+3j+4k", "(1 + 0i + 0j + 0k, 2 + 0i + 0j + 0k)") or as a flat
// coefficient array. The algebra is chosen by the optional "dimension"
// (default 2) and "precision" (default 64) parameters.
//
// Example Usage:
//
//	ops := common.NewOps(common.Defaults{Dimension: 4, Precision: 64})
//	alg, err := ops.Algebra(params)
//	z, err := ops.Value(alg, params, "z")
package common
