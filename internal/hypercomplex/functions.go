package hypercomplex

import "math"

// polar splits z into its real leaf, the unit direction of the non-real
// remainder and that remainder's magnitude. The direction is zero when
// z is real.
func (z Number[T, F]) polar() (re F, dir Number[T, F], theta float64) {
	re = z.Real()
	w := z.SubScalar(re)
	theta = math.Sqrt(float64(w.AbsSq()))
	if theta == 0 {
		return re, z.Zero(), 0
	}
	return re, w.QuoScalar(F(theta)), theta
}

// Exp is exp(re)·(cos θ + û·sin θ).
func (z Number[T, F]) Exp() Number[T, F] {
	re, dir, theta := z.polar()
	return dir.Scale(F(math.Sin(theta))).
		AddScalar(F(math.Cos(theta))).
		Scale(F(math.Exp(float64(re))))
}

// Ln returns the principal branch ln|z| + θ·û, θ measured from the real
// axis. A negative real z has no direction and yields a zero imaginary
// part.
func (z Number[T, F]) Ln() Number[T, F] {
	r := math.Sqrt(float64(z.AbsSq()))
	n := z.QuoScalar(F(r))
	re, dir, _ := n.polar()
	theta := math.Acos(math.Max(-1, math.Min(1, float64(re))))
	return dir.Scale(F(theta)).AddScalar(F(math.Log(r)))
}

// Sqrt is Powf(0.5), the principal root.
func (z Number[T, F]) Sqrt() Number[T, F] {
	return z.Powf(0.5)
}

// Powf is exp(x·ln z).
func (z Number[T, F]) Powf(x F) Number[T, F] {
	return z.Ln().Scale(x).Exp()
}

// Powz is exp(w·ln z).
func (z Number[T, F]) Powz(w Number[T, F]) Number[T, F] {
	return w.Mul(z.Ln()).Exp()
}

// Powu raises z to n by repeated squaring.
func (z Number[T, F]) Powu(n uint32) Number[T, F] {
	if n == 0 {
		return z.One()
	}
	half := z.Powu(n / 2)
	sq := half.Mul(half)
	if n%2 == 1 {
		return sq.Mul(z)
	}
	return sq
}

// Powi raises z to a signed power. Powi(0) is Zero, not One.
func (z Number[T, F]) Powi(n int32) Number[T, F] {
	switch {
	case n == 0:
		return z.Zero()
	case n < 0:
		return z.Powu(uint32(-int64(n))).Inv()
	}
	return z.Powu(uint32(n))
}

// Sinh is (exp(z) − exp(−z))/2.
func (z Number[T, F]) Sinh() Number[T, F] {
	return z.Exp().Sub(z.Neg().Exp()).Scale(0.5)
}

// Cosh is (exp(z) + exp(−z))/2.
func (z Number[T, F]) Cosh() Number[T, F] {
	return z.Exp().Add(z.Neg().Exp()).Scale(0.5)
}

// Tanh is Sinh(z)/Cosh(z).
func (z Number[T, F]) Tanh() Number[T, F] {
	return z.Sinh().Div(z.Cosh())
}

// Sin is (exp(iz) − exp(−iz))/2i with i the first unit at z's depth.
func (z Number[T, F]) Sin() Number[T, F] {
	i := z.I()
	iz := i.Mul(z)
	return iz.Exp().Sub(iz.Neg().Exp()).Div(i.Scale(2))
}

// Cos is (exp(iz) + exp(−iz))/2.
func (z Number[T, F]) Cos() Number[T, F] {
	iz := z.I().Mul(z)
	return iz.Exp().Add(iz.Neg().Exp()).Scale(0.5)
}

// Tan is Sin(z)/Cos(z).
func (z Number[T, F]) Tan() Number[T, F] {
	return z.Sin().Div(z.Cos())
}

// Polar returns r = |z| and p = ln(z/r) so that r·exp(p) == z.
func (z Number[T, F]) Polar() (F, Number[T, F]) {
	r := F(z.Abs())
	return r, z.QuoScalar(r).Ln()
}
