package hypercomplex

import "gonum.org/v1/gonum/floats"

// Abs is the Euclidean norm of the leaves.
func (z Number[T, F]) Abs() float64 {
	return floats.Norm(z.Float64s(), 2)
}

// EqualApprox reports whether every leaf of z and w is within tol, either
// absolutely or relatively.
func (z Number[T, F]) EqualApprox(w Number[T, F], tol float64) bool {
	return floats.EqualApprox(z.Float64s(), w.Float64s(), tol)
}

// IsZero reports whether every leaf is zero.
func (z Number[T, F]) IsZero() bool {
	return z == z.Zero()
}
