package algebra

import hc "github.com/GriffinCanCode/hypercomplex/internal/hypercomplex"

// Unary operations.
const (
	OpNeg   = "neg"
	OpConj  = "conj"
	OpInv   = "inv"
	OpFloor = "floor"
	OpCeil  = "ceil"
	OpRound = "round"
	OpTrunc = "trunc"
	OpFract = "fract"
	OpExp   = "exp"
	OpLn    = "ln"
	OpSqrt  = "sqrt"
	OpSin   = "sin"
	OpCos   = "cos"
	OpTan   = "tan"
	OpSinh  = "sinh"
	OpCosh  = "cosh"
	OpTanh  = "tanh"
)

// Binary operations. OpAdd, OpSub, OpMul, OpDiv and OpRem also name the
// scalar forms z∘x.
const (
	OpAdd        = "add"
	OpSub        = "sub"
	OpMul        = "mul"
	OpDiv        = "div"
	OpRem        = "rem"
	OpPowz       = "powz"
	OpCommutator = "commutator"
)

// Scalar operations with the scalar on the left (x∘z), and the real power.
const (
	OpScalarSub = "rsub"
	OpScalarDiv = "rdiv"
	OpScalarRem = "rrem"
	OpPowf      = "powf"
)

type (
	unaryFunc[T hc.Element[T, F], F hc.Scalar]  func(hc.Number[T, F]) hc.Number[T, F]
	binaryFunc[T hc.Element[T, F], F hc.Scalar] func(hc.Number[T, F], hc.Number[T, F]) hc.Number[T, F]
	scalarFunc[T hc.Element[T, F], F hc.Scalar] func(hc.Number[T, F], F) hc.Number[T, F]
)

type opTable[T hc.Element[T, F], F hc.Scalar] struct {
	unary  map[string]unaryFunc[T, F]
	binary map[string]binaryFunc[T, F]
	scalar map[string]scalarFunc[T, F]
}

func newOpTable[T hc.Element[T, F], F hc.Scalar]() opTable[T, F] {
	return opTable[T, F]{
		unary: map[string]unaryFunc[T, F]{
			OpNeg:   hc.Number[T, F].Neg,
			OpConj:  hc.Number[T, F].Conj,
			OpInv:   hc.Number[T, F].Inv,
			OpFloor: hc.Number[T, F].Floor,
			OpCeil:  hc.Number[T, F].Ceil,
			OpRound: hc.Number[T, F].Round,
			OpTrunc: hc.Number[T, F].Trunc,
			OpFract: hc.Number[T, F].Fract,
			OpExp:   hc.Number[T, F].Exp,
			OpLn:    hc.Number[T, F].Ln,
			OpSqrt:  hc.Number[T, F].Sqrt,
			OpSin:   hc.Number[T, F].Sin,
			OpCos:   hc.Number[T, F].Cos,
			OpTan:   hc.Number[T, F].Tan,
			OpSinh:  hc.Number[T, F].Sinh,
			OpCosh:  hc.Number[T, F].Cosh,
			OpTanh:  hc.Number[T, F].Tanh,
		},
		binary: map[string]binaryFunc[T, F]{
			OpAdd:        hc.Number[T, F].Add,
			OpSub:        hc.Number[T, F].Sub,
			OpMul:        hc.Number[T, F].Mul,
			OpDiv:        hc.Number[T, F].Div,
			OpRem:        hc.Number[T, F].Rem,
			OpPowz:       hc.Number[T, F].Powz,
			OpCommutator: hc.Number[T, F].Commutator,
		},
		scalar: map[string]scalarFunc[T, F]{
			OpAdd:       hc.Number[T, F].AddScalar,
			OpSub:       hc.Number[T, F].SubScalar,
			OpMul:       hc.Number[T, F].Scale,
			OpDiv:       hc.Number[T, F].QuoScalar,
			OpRem:       hc.Number[T, F].RemScalar,
			OpScalarSub: hc.Number[T, F].ScalarSub,
			OpScalarDiv: hc.Number[T, F].ScalarQuo,
			OpScalarRem: hc.Number[T, F].ScalarRem,
			OpPowf:      hc.Number[T, F].Powf,
		},
	}
}
