package hypercomplex

import (
	"fmt"
	"reflect"
)

// Scalar is the set of leaf float types.
type Scalar interface {
	~float32 | ~float64
}

// Element is the capability bundle every level of the construction
// provides. It is satisfied by the leaves (Real32, Real64) and
// inductively by Number.
type Element[T any, F Scalar] interface {
	comparable
	fmt.Stringer

	Zero() T
	One() T
	Conj() T
	AbsSq() F
	Real() F
	Fill(x F) T
	FromSlice(v []F) (T, error)
	AppendLeaves(dst []F) []F
	Depth() int

	Add(w T) T
	Sub(w T) T
	Neg() T
	Mul(w T) T
	AddScalar(x F) T
	Scale(x F) T
	QuoScalar(x F) T

	Floor() T
	Ceil() T
	Round() T
	Trunc() T
	Fract() T

	I() T
	J() (T, error)
	K() (T, error)

	Parse(s string) (T, error)
}

// Functions is the set of elementary functions shared by leaves and
// numbers of every depth.
type Functions[T any, F Scalar] interface {
	Exp() T
	Ln() T
	Sqrt() T
	Powf(x F) T
	Powz(w T) T
	Powu(n uint32) T
	Powi(n int32) T
	Sin() T
	Cos() T
	Tan() T
	Sinh() T
	Cosh() T
	Tanh() T
}

// FromSlice builds a value of type N from its flat leaf coefficients.
func FromSlice[N Element[N, F], F Scalar](v []F) (N, error) {
	var n N
	return n.FromSlice(v)
}

// Fill broadcasts x into every leaf of a value of type N.
func Fill[N Element[N, F], F Scalar](x F) N {
	var n N
	return n.Fill(x)
}

// Must panics if err is non-nil. It is meant for literals in tests and
// examples.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

type adder[N any] interface {
	Zero() N
	Add(w N) N
}

type multiplier[N any] interface {
	One() N
	Mul(w N) N
}

// Sum folds Add over zs starting from zero.
func Sum[N adder[N]](zs ...N) N {
	var acc N
	acc = acc.Zero()
	for _, z := range zs {
		acc = acc.Add(z)
	}
	return acc
}

// Product folds Mul over zs from left to right starting from one.
func Product[N multiplier[N]](zs ...N) N {
	var acc N
	acc = acc.One()
	for _, z := range zs {
		acc = acc.Mul(z)
	}
	return acc
}

func bitSize[F Scalar]() int {
	return reflect.TypeOf((*F)(nil)).Elem().Bits()
}
