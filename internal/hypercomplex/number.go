package hypercomplex

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is one Cayley-Dickson doubling of T: the pair Re + Im·e where e
// is the new imaginary unit. Values are immutable; every method returns a
// new Number.
type Number[T Element[T, F], F Scalar] struct {
	Re T
	Im T
}

type (
	ComplexF64         = Number[Real64, Real64]
	QuaternionF64      = Number[ComplexF64, Real64]
	OctonionF64        = Number[QuaternionF64, Real64]
	SedenionF64        = Number[OctonionF64, Real64]
	TrigintaduonionF64 = Number[SedenionF64, Real64]

	ComplexF32         = Number[Real32, Real32]
	QuaternionF32      = Number[ComplexF32, Real32]
	OctonionF32        = Number[QuaternionF32, Real32]
	SedenionF32        = Number[OctonionF32, Real32]
	TrigintaduonionF32 = Number[SedenionF32, Real32]
)

// New pairs two values of the lower level.
func New[T Element[T, F], F Scalar](re, im T) Number[T, F] {
	return Number[T, F]{Re: re, Im: im}
}

// Embed places x in the real half of a value one level deeper.
func Embed[T Element[T, F], F Scalar](x T) Number[T, F] {
	return Number[T, F]{Re: x, Im: x.Zero()}
}

// NewComplexF64 builds re + im·i.
func NewComplexF64(re, im float64) ComplexF64 {
	return ComplexF64{Re: Real64(re), Im: Real64(im)}
}

// NewComplexF32 builds re + im·i.
func NewComplexF32(re, im float32) ComplexF32 {
	return ComplexF32{Re: Real32(re), Im: Real32(im)}
}

// NewQuaternionF64 builds a + bi + cj + dk.
func NewQuaternionF64(a, b, c, d float64) QuaternionF64 {
	return QuaternionF64{Re: NewComplexF64(a, b), Im: NewComplexF64(c, d)}
}

// NewQuaternionF32 builds a + bi + cj + dk.
func NewQuaternionF32(a, b, c, d float32) QuaternionF32 {
	return QuaternionF32{Re: NewComplexF32(a, b), Im: NewComplexF32(c, d)}
}

// Depth is the number of pair levels above the leaves: 1 for complex
// numbers, 2 for quaternions and so on.
func (z Number[T, F]) Depth() int {
	var t T
	return t.Depth() + 1
}

// Dim is the number of leaf coefficients, 2^Depth.
func (z Number[T, F]) Dim() int {
	return 1 << z.Depth()
}

// Zero returns the additive identity of z's type.
func (z Number[T, F]) Zero() Number[T, F] {
	var t T
	return Number[T, F]{Re: t.Zero(), Im: t.Zero()}
}

// One has a scalar one in the real leaf and zero everywhere else.
func (z Number[T, F]) One() Number[T, F] {
	var t T
	return Number[T, F]{Re: t.One(), Im: t.Zero()}
}

// Conj is (conj(Re), −Im).
func (z Number[T, F]) Conj() Number[T, F] {
	return Number[T, F]{Re: z.Re.Conj(), Im: z.Im.Neg()}
}

// AbsSq is the squared Euclidean norm of the leaves.
func (z Number[T, F]) AbsSq() F {
	return z.Re.AbsSq() + z.Im.AbsSq()
}

// Real is the leaf reached by following Re all the way down.
func (z Number[T, F]) Real() F {
	return z.Re.Real()
}

// Fill sets every leaf to x.
func (z Number[T, F]) Fill(x F) Number[T, F] {
	var t T
	return Number[T, F]{Re: t.Fill(x), Im: t.Fill(x)}
}

// FromSlice bisects v: the first half builds Re, the second half Im.
// len(v) must be exactly Dim().
func (z Number[T, F]) FromSlice(v []F) (Number[T, F], error) {
	if want := z.Dim(); len(v) != want {
		return Number[T, F]{}, &LengthError{Want: want, Got: len(v)}
	}
	var t T
	half := len(v) / 2
	re, err := t.FromSlice(v[:half])
	if err != nil {
		return Number[T, F]{}, err
	}
	im, err := t.FromSlice(v[half:])
	if err != nil {
		return Number[T, F]{}, err
	}
	return Number[T, F]{Re: re, Im: im}, nil
}

// AppendLeaves appends the leaves of z to dst, Re before Im.
func (z Number[T, F]) AppendLeaves(dst []F) []F {
	return z.Im.AppendLeaves(z.Re.AppendLeaves(dst))
}

// Leaves returns the flat coefficients in FromSlice order.
func (z Number[T, F]) Leaves() []F {
	return z.AppendLeaves(make([]F, 0, z.Dim()))
}

// Float64s is Leaves widened to float64.
func (z Number[T, F]) Float64s() []float64 {
	leaves := z.Leaves()
	out := make([]float64, len(leaves))
	for i, x := range leaves {
		out[i] = float64(x)
	}
	return out
}

// Floor rounds every leaf down.
func (z Number[T, F]) Floor() Number[T, F] {
	return Number[T, F]{Re: z.Re.Floor(), Im: z.Im.Floor()}
}

// Ceil rounds every leaf up.
func (z Number[T, F]) Ceil() Number[T, F] {
	return Number[T, F]{Re: z.Re.Ceil(), Im: z.Im.Ceil()}
}

// Round rounds every leaf half away from zero.
func (z Number[T, F]) Round() Number[T, F] {
	return Number[T, F]{Re: z.Re.Round(), Im: z.Im.Round()}
}

// Trunc rounds every leaf toward zero.
func (z Number[T, F]) Trunc() Number[T, F] {
	return Number[T, F]{Re: z.Re.Trunc(), Im: z.Im.Trunc()}
}

// Fract keeps the fractional part of every leaf, z − Trunc(z).
func (z Number[T, F]) Fract() Number[T, F] {
	return Number[T, F]{Re: z.Re.Fract(), Im: z.Im.Fract()}
}

// I is the first imaginary unit. At depth 1 it is the new unit itself;
// deeper levels inherit it from the real half.
func (z Number[T, F]) I() Number[T, F] {
	var t T
	if t.Depth() == 0 {
		return Number[T, F]{Re: t.Zero(), Im: t.One()}
	}
	return Number[T, F]{Re: t.I(), Im: t.Zero()}
}

// J is the second imaginary unit. Complex numbers have none.
func (z Number[T, F]) J() (Number[T, F], error) {
	var t T
	switch t.Depth() {
	case 0:
		return Number[T, F]{}, fmt.Errorf("%w: j at depth %d", ErrBasis, z.Depth())
	case 1:
		return Number[T, F]{Re: t.Zero(), Im: t.One()}, nil
	}
	j, err := t.J()
	if err != nil {
		return Number[T, F]{}, err
	}
	return Number[T, F]{Re: j, Im: t.Zero()}, nil
}

// K is the third imaginary unit, i·j for quaternions.
func (z Number[T, F]) K() (Number[T, F], error) {
	var t T
	switch t.Depth() {
	case 0:
		return Number[T, F]{}, fmt.Errorf("%w: k at depth %d", ErrBasis, z.Depth())
	case 1:
		return Number[T, F]{Re: t.Zero(), Im: t.I()}, nil
	}
	k, err := t.K()
	if err != nil {
		return Number[T, F]{}, err
	}
	return Number[T, F]{Re: k, Im: t.Zero()}, nil
}

// Basis returns the unit for label: "1", "i", "j", "k" or "e<n>" where n
// indexes the flat coefficients.
func (z Number[T, F]) Basis(label string) (Number[T, F], error) {
	idx, ok := basisIndex(label)
	if !ok || idx >= z.Dim() {
		return Number[T, F]{}, fmt.Errorf("%w: %q at depth %d", ErrBasis, label, z.Depth())
	}
	leaves := make([]F, z.Dim())
	leaves[idx] = 1
	return z.FromSlice(leaves)
}

func basisIndex(label string) (int, bool) {
	switch label {
	case "", "1":
		return 0, true
	case "i":
		return 1, true
	case "j":
		return 2, true
	case "k":
		return 3, true
	}
	if n, ok := strings.CutPrefix(label, "e"); ok {
		idx, err := strconv.Atoi(n)
		return idx, err == nil && idx >= 0
	}
	return 0, false
}
