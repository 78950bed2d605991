package hypercomplex

import (
	"math"
	"strconv"
	"strings"
)

// Term is one coefficient of a value together with its basis label.
type Term[F Scalar] struct {
	Basis string
	Coef  F
}

// Terms lists the flat coefficients with their labels. The real leaf has
// an empty label; the next three are "i", "j" and "k", further units are
// "e4", "e5" and so on.
func (z Number[T, F]) Terms() []Term[F] {
	leaves := z.Leaves()
	terms := make([]Term[F], len(leaves))
	for n, c := range leaves {
		terms[n] = Term[F]{Basis: basisLabel(n), Coef: c}
	}
	return terms
}

func basisLabel(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "i"
	case 2:
		return "j"
	case 3:
		return "k"
	}
	return "e" + strconv.Itoa(n)
}

// String renders "a + bi" for complex numbers, "a + bi + cj + dk" for
// quaternions and the nested pair "(re, im)" from octonions on.
func (z Number[T, F]) String() string {
	if z.Depth() > 2 {
		return "(" + z.Re.String() + ", " + z.Im.String() + ")"
	}

	var b strings.Builder
	for n, t := range z.Terms() {
		if n == 0 {
			b.WriteString(formatScalar(t.Coef))
			continue
		}
		if math.Signbit(float64(t.Coef)) {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(formatScalar(F(math.Abs(float64(t.Coef)))))
		b.WriteString(t.Basis)
	}
	return b.String()
}

// MarshalText encodes z in its String form.
func (z Number[T, F]) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText parses text at the depth of z's type.
func (z *Number[T, F]) UnmarshalText(text []byte) error {
	v, err := z.Parse(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
