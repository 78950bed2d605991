// Package algebra selects a hypercomplex instantiation at run time.
//
// The generic types in package hypercomplex are fixed at compile time.
// Outer surfaces (HTTP, tool providers, codecs) only learn the dimension
// and precision from their input, so this package wraps each of the ten
// supported instantiations behind the Algebra and Value interfaces with
// float64 at the boundary:
//
//	alg, err := algebra.Lookup(4, 64)
//	q, err := alg.Parse("1+2i+3j+4k")
//	p, err := q.Binary(algebra.OpMul, q)
//
// Values of different algebras never mix; doing so returns ErrMismatch.
package algebra
