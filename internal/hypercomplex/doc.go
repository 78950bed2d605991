// Package hypercomplex implements the Cayley-Dickson construction over
// float32 and float64 leaves.
//
// A Number is a pair (Re, Im) of values one level shallower. Nesting a
// Number inside another doubles the dimension:
//   - ComplexF64:         Number[Real64, Real64]
//   - QuaternionF64:      Number[ComplexF64, Real64]
//   - OctonionF64:        Number[QuaternionF64, Real64]
//   - SedenionF64:        Number[OctonionF64, Real64]
//   - TrigintaduonionF64: Number[SedenionF64, Real64]
//
// Every capability (identity, conjugate, norm, rounding, basis elements,
// parsing) is implemented once for the leaves and once inductively for
// Number, and the depth of a value is resolved through its type chain.
//
// Multiplication follows
//
//	(a0, a1)(b0, b1) = (a0·b0 − conj(b1)·a1, b1·a0 + a1·conj(b0))
//
// which is commutative up to depth 1, associative up to depth 2 and
// neither beyond that.
//
// Example Usage:
//
//	z := hypercomplex.NewComplexF64(1, 2)
//	w := z.Mul(z.Conj())                  // 5 + 0i
//	q, err := hypercomplex.QuaternionF64{}.Parse("1+2i+3j+4k")
//	o := hypercomplex.Must(hypercomplex.FromSlice[hypercomplex.OctonionF64](leaves))
//
// Values are immutable and safe to share between goroutines.
package hypercomplex
