package hypercomplex

import "math"

// Real64 is the float64 leaf of the construction.
type Real64 float64

// Element identities. A leaf is its own conjugate and real part.
func (x Real64) Zero() Real64         { return 0 }
func (x Real64) One() Real64          { return 1 }
func (x Real64) Conj() Real64         { return x }
func (x Real64) AbsSq() Real64        { return x * x }
func (x Real64) Real() Real64         { return x }
func (x Real64) Fill(v Real64) Real64 { return v }
func (x Real64) Depth() int           { return 0 }

// FromSlice consumes exactly one coefficient.
func (x Real64) FromSlice(v []Real64) (Real64, error) {
	if len(v) != 1 {
		return 0, &LengthError{Want: 1, Got: len(v)}
	}
	return v[0], nil
}

// AppendLeaves appends x itself.
func (x Real64) AppendLeaves(dst []Real64) []Real64 { return append(dst, x) }

// Plain float arithmetic; division by zero follows IEEE 754.
func (x Real64) Add(w Real64) Real64       { return x + w }
func (x Real64) Sub(w Real64) Real64       { return x - w }
func (x Real64) Neg() Real64               { return -x }
func (x Real64) Mul(w Real64) Real64       { return x * w }
func (x Real64) Div(w Real64) Real64       { return x / w }
func (x Real64) AddScalar(v Real64) Real64 { return x + v }
func (x Real64) Scale(v Real64) Real64     { return x * v }
func (x Real64) QuoScalar(v Real64) Real64 { return x / v }

// Rounding goes through math on float64.
func (x Real64) Floor() Real64 { return Real64(math.Floor(float64(x))) }
func (x Real64) Ceil() Real64  { return Real64(math.Ceil(float64(x))) }
func (x Real64) Round() Real64 { return Real64(math.Round(float64(x))) }
func (x Real64) Trunc() Real64 { return Real64(math.Trunc(float64(x))) }
func (x Real64) Fract() Real64 { return x - x.Trunc() }

// I, J and K are zero: a real leaf has no imaginary units.
func (x Real64) I() Real64          { return 0 }
func (x Real64) J() (Real64, error) { return 0, nil }
func (x Real64) K() (Real64, error) { return 0, nil }

// String formats x in the shortest form that parses back exactly.
func (x Real64) String() string { return formatScalar(x) }

// Parse reads a decimal real number.
func (x Real64) Parse(s string) (Real64, error) { return parseScalar[Real64](s) }

// Elementary functions delegate to math.
func (x Real64) Exp() Real64          { return Real64(math.Exp(float64(x))) }
func (x Real64) Ln() Real64           { return Real64(math.Log(float64(x))) }
func (x Real64) Sqrt() Real64         { return Real64(math.Sqrt(float64(x))) }
func (x Real64) Powf(v Real64) Real64 { return Real64(math.Pow(float64(x), float64(v))) }
func (x Real64) Powz(w Real64) Real64 { return Real64(math.Pow(float64(x), float64(w))) }
func (x Real64) Powu(n uint32) Real64 { return Real64(math.Pow(float64(x), float64(n))) }
func (x Real64) Powi(n int32) Real64  { return Real64(math.Pow(float64(x), float64(n))) }
func (x Real64) Sin() Real64          { return Real64(math.Sin(float64(x))) }
func (x Real64) Cos() Real64          { return Real64(math.Cos(float64(x))) }
func (x Real64) Tan() Real64          { return Real64(math.Tan(float64(x))) }
func (x Real64) Sinh() Real64         { return Real64(math.Sinh(float64(x))) }
func (x Real64) Cosh() Real64         { return Real64(math.Cosh(float64(x))) }
func (x Real64) Tanh() Real64         { return Real64(math.Tanh(float64(x))) }
