package algebra

import (
	"fmt"

	hc "github.com/GriffinCanCode/hypercomplex/internal/hypercomplex"
)

// Value is a hypercomplex number of one Algebra.
type Value interface {
	fmt.Stringer
	Algebra() Algebra
	Coefficients() []float64
	Real() float64
	AbsSq() float64
	Norm() float64
	IsZero() bool

	// Unary applies a unary operation such as OpConj or OpExp.
	Unary(op string) (Value, error)
	// Binary applies z∘w. w must belong to the same algebra.
	Binary(op string, w Value) (Value, error)
	// Scalar applies z∘x, or x∘z for OpScalarSub, OpScalarDiv and
	// OpScalarRem.
	Scalar(op string, x float64) (Value, error)

	Powu(n uint32) Value
	Powi(n int32) Value
	Associator(b, c Value) (Value, error)
	Polar() (float64, Value)
	EqualApprox(w Value, tol float64) bool
}

type value[T hc.Element[T, F], F hc.Scalar] struct {
	alg *algebra[T, F]
	n   hc.Number[T, F]
}

func (v value[T, F]) Algebra() Algebra        { return v.alg }
func (v value[T, F]) String() string          { return v.n.String() }
func (v value[T, F]) Coefficients() []float64 { return v.n.Float64s() }
func (v value[T, F]) Real() float64           { return float64(v.n.Real()) }
func (v value[T, F]) AbsSq() float64          { return float64(v.n.AbsSq()) }
func (v value[T, F]) Norm() float64           { return v.n.Abs() }
func (v value[T, F]) IsZero() bool            { return v.n.IsZero() }

func (v value[T, F]) Unary(op string) (Value, error) {
	f, ok := v.alg.ops.unary[op]
	if !ok {
		return nil, fmt.Errorf("%w: unary %q", ErrUnknownOp, op)
	}
	return v.alg.wrap(f(v.n)), nil
}

func (v value[T, F]) Binary(op string, w Value) (Value, error) {
	f, ok := v.alg.ops.binary[op]
	if !ok {
		return nil, fmt.Errorf("%w: binary %q", ErrUnknownOp, op)
	}
	other, err := v.alg.unwrap(w)
	if err != nil {
		return nil, err
	}
	return v.alg.wrap(f(v.n, other)), nil
}

func (v value[T, F]) Scalar(op string, x float64) (Value, error) {
	f, ok := v.alg.ops.scalar[op]
	if !ok {
		return nil, fmt.Errorf("%w: scalar %q", ErrUnknownOp, op)
	}
	return v.alg.wrap(f(v.n, F(x))), nil
}

func (v value[T, F]) Powu(n uint32) Value { return v.alg.wrap(v.n.Powu(n)) }
func (v value[T, F]) Powi(n int32) Value  { return v.alg.wrap(v.n.Powi(n)) }

func (v value[T, F]) Associator(b, c Value) (Value, error) {
	nb, err := v.alg.unwrap(b)
	if err != nil {
		return nil, err
	}
	nc, err := v.alg.unwrap(c)
	if err != nil {
		return nil, err
	}
	return v.alg.wrap(v.n.Associator(nb, nc)), nil
}

func (v value[T, F]) Polar() (float64, Value) {
	r, p := v.n.Polar()
	return float64(r), v.alg.wrap(p)
}

// EqualApprox is false for values of different algebras.
func (v value[T, F]) EqualApprox(w Value, tol float64) bool {
	other, err := v.alg.unwrap(w)
	return err == nil && v.n.EqualApprox(other, tol)
}
