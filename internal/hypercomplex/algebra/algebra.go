package algebra

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	hc "github.com/GriffinCanCode/hypercomplex/internal/hypercomplex"
)

var (
	ErrUnsupported = errors.New("algebra: unsupported dimension or precision")
	ErrMismatch    = errors.New("algebra: operands belong to different algebras")
	ErrUnknownOp   = errors.New("algebra: unknown operation")
)

// Algebra is one concrete Cayley-Dickson algebra.
type Algebra interface {
	Name() string
	Dimension() int
	Precision() int
	Zero() Value
	One() Value
	Fill(x float64) Value
	Basis(label string) (Value, error)
	Parse(text string) (Value, error)
	FromCoefficients(coefs []float64) (Value, error)
}

type key struct {
	dimension int
	precision int
}

var registry = map[key]Algebra{}

func register(algs ...Algebra) {
	for _, a := range algs {
		registry[key{a.Dimension(), a.Precision()}] = a
	}
}

func init() {
	register(
		newAlgebra[hc.Real64, hc.Real64]("complex"),
		newAlgebra[hc.ComplexF64, hc.Real64]("quaternion"),
		newAlgebra[hc.QuaternionF64, hc.Real64]("octonion"),
		newAlgebra[hc.OctonionF64, hc.Real64]("sedenion"),
		newAlgebra[hc.SedenionF64, hc.Real64]("trigintaduonion"),
		newAlgebra[hc.Real32, hc.Real32]("complex"),
		newAlgebra[hc.ComplexF32, hc.Real32]("quaternion"),
		newAlgebra[hc.QuaternionF32, hc.Real32]("octonion"),
		newAlgebra[hc.OctonionF32, hc.Real32]("sedenion"),
		newAlgebra[hc.SedenionF32, hc.Real32]("trigintaduonion"),
	)
}

// Lookup returns the algebra with the given number of coefficients and
// leaf precision in bits.
func Lookup(dimension, precision int) (Algebra, error) {
	a, ok := registry[key{dimension, precision}]
	if !ok {
		return nil, fmt.Errorf("%w: dimension %d, precision %d", ErrUnsupported, dimension, precision)
	}
	return a, nil
}

// Supported lists every algebra ordered by precision, then dimension.
func Supported() []Algebra {
	algs := make([]Algebra, 0, len(registry))
	for _, a := range registry {
		algs = append(algs, a)
	}
	sort.Slice(algs, func(i, j int) bool {
		if algs[i].Precision() != algs[j].Precision() {
			return algs[i].Precision() < algs[j].Precision()
		}
		return algs[i].Dimension() < algs[j].Dimension()
	})
	return algs
}

type algebra[T hc.Element[T, F], F hc.Scalar] struct {
	name      string
	dimension int
	precision int
	ops       opTable[T, F]
}

func newAlgebra[T hc.Element[T, F], F hc.Scalar](name string) *algebra[T, F] {
	return &algebra[T, F]{
		name:      name,
		dimension: hc.Number[T, F]{}.Dim(),
		precision: reflect.TypeOf((*F)(nil)).Elem().Bits(),
		ops:       newOpTable[T, F](),
	}
}

func (a *algebra[T, F]) Name() string   { return a.name }
func (a *algebra[T, F]) Dimension() int { return a.dimension }
func (a *algebra[T, F]) Precision() int { return a.precision }

func (a *algebra[T, F]) String() string {
	return fmt.Sprintf("%s/f%d", a.name, a.precision)
}

func (a *algebra[T, F]) Zero() Value { return a.wrap(hc.Number[T, F]{}.Zero()) }
func (a *algebra[T, F]) One() Value  { return a.wrap(hc.Number[T, F]{}.One()) }

func (a *algebra[T, F]) Fill(x float64) Value {
	return a.wrap(hc.Number[T, F]{}.Fill(F(x)))
}

func (a *algebra[T, F]) Basis(label string) (Value, error) {
	n, err := hc.Number[T, F]{}.Basis(label)
	if err != nil {
		return nil, err
	}
	return a.wrap(n), nil
}

func (a *algebra[T, F]) Parse(text string) (Value, error) {
	n, err := hc.Number[T, F]{}.Parse(text)
	if err != nil {
		return nil, err
	}
	return a.wrap(n), nil
}

func (a *algebra[T, F]) FromCoefficients(coefs []float64) (Value, error) {
	leaves := make([]F, len(coefs))
	for i, c := range coefs {
		leaves[i] = F(c)
	}
	n, err := hc.Number[T, F]{}.FromSlice(leaves)
	if err != nil {
		return nil, err
	}
	return a.wrap(n), nil
}

func (a *algebra[T, F]) wrap(n hc.Number[T, F]) Value {
	return value[T, F]{alg: a, n: n}
}

func (a *algebra[T, F]) unwrap(w Value) (hc.Number[T, F], error) {
	v, ok := w.(value[T, F])
	if !ok {
		if w == nil {
			return hc.Number[T, F]{}, fmt.Errorf("%w: %s and nil", ErrMismatch, a)
		}
		return hc.Number[T, F]{}, fmt.Errorf("%w: %s and %s/f%d", ErrMismatch, a, w.Algebra().Name(), w.Algebra().Precision())
	}
	return v.n, nil
}
