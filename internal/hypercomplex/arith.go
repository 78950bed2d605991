package hypercomplex

// Add is the component-wise sum.
func (z Number[T, F]) Add(w Number[T, F]) Number[T, F] {
	return Number[T, F]{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub is the component-wise difference.
func (z Number[T, F]) Sub(w Number[T, F]) Number[T, F] {
	return Number[T, F]{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Neg negates every leaf.
func (z Number[T, F]) Neg() Number[T, F] {
	return Number[T, F]{Re: z.Re.Neg(), Im: z.Im.Neg()}
}

// Mul is the Cayley-Dickson product
//
//	(a0, a1)(b0, b1) = (a0·b0 − conj(b1)·a1, b1·a0 + a1·conj(b0))
//
// Operand order matters from depth 2 on.
func (z Number[T, F]) Mul(w Number[T, F]) Number[T, F] {
	return Number[T, F]{
		Re: z.Re.Mul(w.Re).Sub(w.Im.Conj().Mul(z.Im)),
		Im: w.Im.Mul(z.Re).Add(z.Im.Mul(w.Re.Conj())),
	}
}

// Div is z·conj(w)/|w|². A zero divisor yields Inf and NaN leaves.
func (z Number[T, F]) Div(w Number[T, F]) Number[T, F] {
	return z.Mul(w.Conj()).Scale(1 / w.AbsSq())
}

// Rem is z − w·trunc(z/w).
func (z Number[T, F]) Rem(w Number[T, F]) Number[T, F] {
	return z.Sub(w.Mul(z.Div(w).Trunc()))
}

// Inv is the multiplicative inverse conj(z)/|z|².
func (z Number[T, F]) Inv() Number[T, F] {
	return z.ScalarQuo(1)
}

// AddScalar adds x to the real leaf only.
func (z Number[T, F]) AddScalar(x F) Number[T, F] {
	return Number[T, F]{Re: z.Re.AddScalar(x), Im: z.Im}
}

// SubScalar subtracts x from the real leaf only.
func (z Number[T, F]) SubScalar(x F) Number[T, F] {
	return z.AddScalar(-x)
}

// Scale multiplies every leaf by x.
func (z Number[T, F]) Scale(x F) Number[T, F] {
	return Number[T, F]{Re: z.Re.Scale(x), Im: z.Im.Scale(x)}
}

// QuoScalar divides every leaf by x.
func (z Number[T, F]) QuoScalar(x F) Number[T, F] {
	return Number[T, F]{Re: z.Re.QuoScalar(x), Im: z.Im.QuoScalar(x)}
}

// ScalarSub is x − z.
func (z Number[T, F]) ScalarSub(x F) Number[T, F] {
	return z.Neg().AddScalar(x)
}

// ScalarQuo is x/z.
func (z Number[T, F]) ScalarQuo(x F) Number[T, F] {
	return z.Conj().Scale(x / z.AbsSq())
}

// RemScalar is z − x·trunc(z/x).
func (z Number[T, F]) RemScalar(x F) Number[T, F] {
	return z.Sub(z.QuoScalar(x).Trunc().Scale(x))
}

// ScalarRem is x − z·trunc(x/z).
func (z Number[T, F]) ScalarRem(x F) Number[T, F] {
	return z.Mul(z.ScalarQuo(x).Trunc()).ScalarSub(x)
}

// AddLow adds a value one level shallower, embedded in the real half.
func (z Number[T, F]) AddLow(x T) Number[T, F] {
	return Number[T, F]{Re: z.Re.Add(x), Im: z.Im}
}

// SubLow is z − x for x one level shallower.
func (z Number[T, F]) SubLow(x T) Number[T, F] {
	return Number[T, F]{Re: z.Re.Sub(x), Im: z.Im}
}

// LowAdd is x + z for x one level shallower.
func (z Number[T, F]) LowAdd(x T) Number[T, F] {
	return Number[T, F]{Re: x.Add(z.Re), Im: z.Im}
}

// LowSub subtracts the real half of z from x, one level shallower. Only the
// real half is touched, matching SubLow with the operands swapped.
func (z Number[T, F]) LowSub(x T) Number[T, F] {
	return Number[T, F]{Re: x.Sub(z.Re), Im: z.Im}
}

// Commutator is z·w − w·z.
func (z Number[T, F]) Commutator(w Number[T, F]) Number[T, F] {
	return z.Mul(w).Sub(w.Mul(z))
}

// Associator is (z·b)·c − z·(b·c).
func (z Number[T, F]) Associator(b, c Number[T, F]) Number[T, F] {
	return z.Mul(b).Mul(c).Sub(z.Mul(b.Mul(c)))
}
