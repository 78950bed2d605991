package hypercomplex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
)

func toQuat(q QuaternionF64) quat.Number {
	v := q.Float64s()
	return quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]}
}

func fromQuat(q quat.Number) QuaternionF64 {
	return NewQuaternionF64(q.Real, q.Imag, q.Jmag, q.Kmag)
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplexF64(1, 2)

	assert.Equal(t, NewComplexF64(3, 5), a.Add(NewComplexF64(2, 3)))
	assert.Equal(t, NewComplexF64(-1, -1), a.Sub(NewComplexF64(2, 3)))
	assert.Equal(t, NewComplexF64(-1, -2), a.Neg())
	assert.Equal(t, NewComplexF64(5, 0), a.Mul(NewComplexF64(1, -2)))
	assert.Equal(t, NewComplexF64(1, -1), NewComplexF64(1, 1).ScalarQuo(2))
	assert.Equal(t, NewComplexF64(1, -1), NewComplexF64(1, 1).Inv().Scale(2))

	t.Run("matches complex128", func(t *testing.T) {
		x, y := complex(1.5, -0.25), complex(-3, 4)
		zx, zy := NewComplexF64(real(x), imag(x)), NewComplexF64(real(y), imag(y))

		assertComplex(t, x*y, zx.Mul(zy))
		assertComplex(t, x/y, zx.Div(zy))
		assertComplex(t, x-y, zx.Sub(zy))
	})
}

func assertComplex(t *testing.T, want complex128, got ComplexF64) {
	t.Helper()
	assert.InDelta(t, real(want), float64(got.Re), 1e-12)
	assert.InDelta(t, imag(want), float64(got.Im), 1e-12)
}

func TestQuaternionArithmetic(t *testing.T) {
	a := NewQuaternionF64(1, 0, 2, 3)
	b := NewQuaternionF64(1, 0, -2, -3)
	assert.Equal(t, NewQuaternionF64(14, 0, 0, 0), a.Mul(b))

	t.Run("product matches gonum", func(t *testing.T) {
		x := NewQuaternionF64(1, -2, 0.5, 3)
		y := NewQuaternionF64(-0.75, 4, 2, -1)
		assert.True(t, x.Mul(y).EqualApprox(fromQuat(quat.Mul(toQuat(x), toQuat(y))), 1e-12))
		assert.True(t, y.Mul(x).EqualApprox(fromQuat(quat.Mul(toQuat(y), toQuat(x))), 1e-12))
		assert.True(t, x.Div(y).EqualApprox(fromQuat(quat.Mul(toQuat(x), quat.Inv(toQuat(y)))), 1e-12))
	})

	t.Run("commutator", func(t *testing.T) {
		z1 := NewQuaternionF64(1, -1, 1, 1)
		z2 := NewQuaternionF64(1, 1, 1, -1)
		assert.Equal(t, NewQuaternionF64(0, -4, 0, -4), z1.Commutator(z2))
		assert.Equal(t, NewQuaternionF64(0, -4, 0, -4), z1.Mul(z2).Sub(z2.Mul(z1)))
	})

	t.Run("associative", func(t *testing.T) {
		x := NewQuaternionF64(1, 2, 3, 4)
		y := NewQuaternionF64(-1, 0.5, 2, 0)
		z := NewQuaternionF64(0, 1, -1, 2)
		assert.True(t, x.Associator(y, z).EqualApprox(QuaternionF64{}, 1e-12))
	})
}

func TestOctonionArithmetic(t *testing.T) {
	a := octonion(1, 0, 2, 3, 2, 0, 1, 3)
	b := octonion(1, 0, -2, -3, -2, 0, -1, -3)
	assert.Equal(t, octonion(28, 0, 0, 0, 0, 0, 0, 0), a.Mul(b))

	t.Run("scalar over octonion", func(t *testing.T) {
		ones := Fill[OctonionF64](Real64(1))
		want := octonion(0.25, -0.25, -0.25, -0.25, -0.25, -0.25, -0.25, -0.25)
		assert.Equal(t, want, ones.ScalarQuo(2))
	})

	t.Run("not associative", func(t *testing.T) {
		z1 := octonion(1, -1, 1, 1, 0, 1, 0, 0)
		z2 := octonion(1, 1, 1, -1, 0, 0, 0, 1)
		z3 := octonion(1, 1, -1, 1, 0, 0, 1, 0)
		assoc := z1.Associator(z2, z3)
		assert.False(t, assoc.IsZero())
		assert.Equal(t, z1.Mul(z2).Mul(z3).Sub(z1.Mul(z2.Mul(z3))), assoc)
	})

	t.Run("basis units anticommute", func(t *testing.T) {
		o := OctonionF64{}
		e1, e2 := Must(o.Basis("e1")), Must(o.Basis("e6"))
		assert.Equal(t, e1.Mul(e2).Neg(), e2.Mul(e1))
	})
}

func TestProperties(t *testing.T) {
	values := []SedenionF64{
		sedenion(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16),
		sedenion(-0.5, 0, 1.25, 3, 0, 0, -2, 7, 1, 1, 1, 1, -1, -1, -1, -1),
		Fill[SedenionF64](Real64(0.1)),
	}

	for _, z := range values {
		assert.Equal(t, z, z.Conj().Conj())
		assert.Equal(t, z.AbsSq(), z.Conj().AbsSq())

		norm := z.Mul(z.Conj())
		assert.InDelta(t, float64(z.AbsSq()), float64(norm.Real()), 1e-9)
		for _, leaf := range norm.Leaves()[1:] {
			assert.InDelta(t, 0, float64(leaf), 1e-12)
		}

		assert.True(t, z.Div(z).EqualApprox(z.One(), 1e-12), z.String())
		assert.True(t, z.Mul(z.Inv()).EqualApprox(z.One(), 1e-12), z.String())
	}
}

func TestScalarOperators(t *testing.T) {
	z := NewQuaternionF64(7.5, 3, -2, 1)

	assert.Equal(t, NewQuaternionF64(9.5, 3, -2, 1), z.AddScalar(2))
	assert.Equal(t, NewQuaternionF64(5.5, 3, -2, 1), z.SubScalar(2))
	assert.Equal(t, NewQuaternionF64(15, 6, -4, 2), z.Scale(2))
	assert.Equal(t, NewQuaternionF64(3.75, 1.5, -1, 0.5), z.QuoScalar(2))
	assert.Equal(t, NewQuaternionF64(-5.5, -3, 2, -1), z.ScalarSub(2))
	assert.Equal(t, z.One().Scale(2).Sub(z), z.ScalarSub(2))
	assert.True(t, z.ScalarQuo(2).EqualApprox(z.One().Scale(2).Div(z), 1e-12))

	t.Run("remainder", func(t *testing.T) {
		c := NewComplexF64(7.5, 3)
		assert.Equal(t, NewComplexF64(1.5, 1), c.RemScalar(2))
		assert.Equal(t, c.Sub(NewComplexF64(2, 0).Mul(c.QuoScalar(2).Trunc())), c.RemScalar(2))

		w := NewComplexF64(2, 1)
		assert.Equal(t, c.Sub(w.Mul(c.Div(w).Trunc())), c.Rem(w))

		x := NewComplexF64(0.5, 0.25)
		assert.Equal(t, x.Mul(x.ScalarQuo(3).Trunc()).ScalarSub(3), x.ScalarRem(3))
		assert.Equal(t, NewComplexF64(3, 0).Rem(x), x.ScalarRem(3))
	})

	t.Run("division by zero follows IEEE", func(t *testing.T) {
		got := NewComplexF64(1, 1).Div(ComplexF64{})
		assert.True(t, math.IsNaN(float64(got.Re)) || math.IsInf(float64(got.Re), 0))
	})
}

func TestCrossDepth(t *testing.T) {
	q := NewQuaternionF64(1, 2, 3, 4)
	c := NewComplexF64(10, 20)
	embedded := Embed[ComplexF64, Real64](c)

	assert.Equal(t, NewQuaternionF64(11, 22, 3, 4), q.AddLow(c))
	assert.Equal(t, q.Add(embedded), q.AddLow(c))
	assert.Equal(t, embedded.Add(q), q.LowAdd(c))
	assert.Equal(t, q.AddLow(c), q.LowAdd(c))
	assert.Equal(t, q.Sub(embedded), q.SubLow(c))
	assert.Equal(t, NewQuaternionF64(9, 18, 3, 4), q.LowSub(c))
	assert.Equal(t, q.Im, q.LowSub(c).Im, "imaginary half is untouched")
	assert.Equal(t, q.SubLow(c).Re.Neg(), q.LowSub(c).Re)
}

func TestAccumulation(t *testing.T) {
	zs := []ComplexF64{NewComplexF64(1, 2), NewComplexF64(3, -1), NewComplexF64(0, 1)}

	assert.Equal(t, NewComplexF64(4, 2), Sum(zs...))
	assert.Equal(t, zs[0].Mul(zs[1]).Mul(zs[2]), Product(zs...))
	assert.Equal(t, ComplexF64{}, Sum[ComplexF64]())
	assert.Equal(t, ComplexF64{}.One(), Product[ComplexF64]())
}
