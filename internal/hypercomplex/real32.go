package hypercomplex

import "math"

// Real32 is the float32 leaf of the construction.
type Real32 float32

// Element identities. A leaf is its own conjugate and real part.
func (x Real32) Zero() Real32         { return 0 }
func (x Real32) One() Real32          { return 1 }
func (x Real32) Conj() Real32         { return x }
func (x Real32) AbsSq() Real32        { return x * x }
func (x Real32) Real() Real32         { return x }
func (x Real32) Fill(v Real32) Real32 { return v }
func (x Real32) Depth() int           { return 0 }

// FromSlice consumes exactly one coefficient.
func (x Real32) FromSlice(v []Real32) (Real32, error) {
	if len(v) != 1 {
		return 0, &LengthError{Want: 1, Got: len(v)}
	}
	return v[0], nil
}

// AppendLeaves appends x itself.
func (x Real32) AppendLeaves(dst []Real32) []Real32 { return append(dst, x) }

// Plain float arithmetic; division by zero follows IEEE 754.
func (x Real32) Add(w Real32) Real32       { return x + w }
func (x Real32) Sub(w Real32) Real32       { return x - w }
func (x Real32) Neg() Real32               { return -x }
func (x Real32) Mul(w Real32) Real32       { return x * w }
func (x Real32) Div(w Real32) Real32       { return x / w }
func (x Real32) AddScalar(v Real32) Real32 { return x + v }
func (x Real32) Scale(v Real32) Real32     { return x * v }
func (x Real32) QuoScalar(v Real32) Real32 { return x / v }

// Rounding goes through math on float64.
func (x Real32) Floor() Real32 { return Real32(math.Floor(float64(x))) }
func (x Real32) Ceil() Real32  { return Real32(math.Ceil(float64(x))) }
func (x Real32) Round() Real32 { return Real32(math.Round(float64(x))) }
func (x Real32) Trunc() Real32 { return Real32(math.Trunc(float64(x))) }
func (x Real32) Fract() Real32 { return x - x.Trunc() }

// I, J and K are zero: a real leaf has no imaginary units.
func (x Real32) I() Real32          { return 0 }
func (x Real32) J() (Real32, error) { return 0, nil }
func (x Real32) K() (Real32, error) { return 0, nil }

// String formats x in the shortest form that parses back exactly.
func (x Real32) String() string { return formatScalar(x) }

// Parse reads a decimal real number.
func (x Real32) Parse(s string) (Real32, error) { return parseScalar[Real32](s) }

// Elementary functions delegate to math.
func (x Real32) Exp() Real32          { return Real32(math.Exp(float64(x))) }
func (x Real32) Ln() Real32           { return Real32(math.Log(float64(x))) }
func (x Real32) Sqrt() Real32         { return Real32(math.Sqrt(float64(x))) }
func (x Real32) Powf(v Real32) Real32 { return Real32(math.Pow(float64(x), float64(v))) }
func (x Real32) Powz(w Real32) Real32 { return Real32(math.Pow(float64(x), float64(w))) }
func (x Real32) Powu(n uint32) Real32 { return Real32(math.Pow(float64(x), float64(n))) }
func (x Real32) Powi(n int32) Real32  { return Real32(math.Pow(float64(x), float64(n))) }
func (x Real32) Sin() Real32          { return Real32(math.Sin(float64(x))) }
func (x Real32) Cos() Real32          { return Real32(math.Cos(float64(x))) }
func (x Real32) Tan() Real32          { return Real32(math.Tan(float64(x))) }
func (x Real32) Sinh() Real32         { return Real32(math.Sinh(float64(x))) }
func (x Real32) Cosh() Real32         { return Real32(math.Cosh(float64(x))) }
func (x Real32) Tanh() Real32         { return Real32(math.Tanh(float64(x))) }
