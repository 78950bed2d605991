package hypercomplex

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		z    fmt.Stringer
		want string
	}{
		{"complex", NewComplexF64(1, 2), "1 + 2i"},
		{"negative imaginary", NewComplexF64(1, -2), "1 - 2i"},
		{"negative zero", NewComplexF64(-3.5, math.Copysign(0, -1)), "-3.5 - 0i"},
		{"exponent", NewComplexF64(1e21, 1e-7), "1e+21 + 1e-07i"},
		{"quaternion", NewQuaternionF64(1, -2, 3, -4.5), "1 - 2i + 3j - 4.5k"},
		{"float32", NewComplexF32(1.1, 0.1), "1.1 + 0.1i"},
		{"octonion", octonion(1, 2, 3, 4, 5, 6, 7, 8), "(1 + 2i + 3j + 4k, 5 + 6i + 7j + 8k)"},
		{"sedenion", SedenionF64{}.One(), "((1 + 0i + 0j + 0k, 0 + 0i + 0j + 0k), (0 + 0i + 0j + 0k, 0 + 0i + 0j + 0k))"},
		{"leaf", Real64(-0.25), "-0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.z.String())
		})
	}
}

func TestTerms(t *testing.T) {
	terms := sedenion(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15).Terms()
	require.Len(t, terms, 16)
	assert.Equal(t, Term[Real64]{Basis: "", Coef: 0}, terms[0])
	assert.Equal(t, Term[Real64]{Basis: "k", Coef: 3}, terms[3])
	assert.Equal(t, Term[Real64]{Basis: "e15", Coef: 15}, terms[15])
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in   string
		want ComplexF64
	}{
		{"4+1i", NewComplexF64(4, 1)},
		{"4", NewComplexF64(4, 0)},
		{"1i", NewComplexF64(0, 1)},
		{"12i", NewComplexF64(0, 12)},
		{"-2.5I", NewComplexF64(0, -2.5)},
		{" 1 - 2i ", NewComplexF64(1, -2)},
		{"-1.5e3-2i", NewComplexF64(-1500, -2)},
		{".5+.25i", NewComplexF64(0.5, 0.25)},
		{"+3.-4e-2i", NewComplexF64(3, -0.04)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ComplexF64{}.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuaternion(t *testing.T) {
	tests := []struct {
		in   string
		want QuaternionF64
	}{
		{"1+2i+3j+4k", NewQuaternionF64(1, 2, 3, 4)},
		{"1 - 2i + 3j - 4.5k", NewQuaternionF64(1, -2, 3, -4.5)},
		{"3j", NewQuaternionF64(0, 0, 3, 0)},
		{"1+2i", NewQuaternionF64(1, 2, 0, 0)},
		{"-1k", NewQuaternionF64(0, 0, 0, -1)},
		{"2+1J-1K", NewQuaternionF64(2, 0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := QuaternionF64{}.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("flat notation", func(t *testing.T) {
		for _, in := range []string{"", "   ", "4b+1i", "i", "1+2j", "1+2i+3i", "--1", "abc"} {
			_, err := ComplexF64{}.Parse(in)
			require.Error(t, err, in)
			assert.True(t, errors.Is(err, ErrParse), in)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, in, perr.Input)
			assert.Equal(t, 1, perr.Depth)
		}

		_, err := QuaternionF64{}.Parse("1+2k+3j")
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("pair notation", func(t *testing.T) {
		for _, in := range []string{
			"1 + 2i + 3j + 4k",
			"(1 + 2i + 3j + 4k)",
			"(1 + 2i + 3j + 4k, )",
			"(, 1)",
			"(1 + 2i, 3x)",
			"(1, 2), (3, 4)",
			"((1, 2)",
		} {
			_, err := OctonionF64{}.Parse(in)
			assert.ErrorIs(t, err, ErrParse, in)
		}
	})

	t.Run("leaf", func(t *testing.T) {
		_, err := Real64(0).Parse("x")
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("complex", func(t *testing.T) {
		for _, z := range []ComplexF64{
			NewComplexF64(1, 2),
			NewComplexF64(-0.1, 1e-9),
			NewComplexF64(123456789.125, -3e21),
			NewComplexF64(0, 0),
		} {
			got, err := ComplexF64{}.Parse(z.String())
			require.NoError(t, err, z.String())
			assert.Equal(t, z, got)
		}
	})

	t.Run("quaternion", func(t *testing.T) {
		z := NewQuaternionF64(math.Pi, -math.E, 1.0/3, -7)
		assert.Equal(t, z, Must(QuaternionF64{}.Parse(z.String())))
	})

	t.Run("float32", func(t *testing.T) {
		z := NewQuaternionF32(0.1, -0.2, 0.3, 1.0/3)
		assert.Equal(t, z, Must(QuaternionF32{}.Parse(z.String())))
	})

	t.Run("deeper", func(t *testing.T) {
		o := octonion(1, -2, 0.5, 3, -4, 5.25, 6, -7)
		assert.Equal(t, o, Must(OctonionF64{}.Parse(o.String())))

		s := sedenion(1, 2, 3, 4, 5, 6, 7, 8, -9, -10, -11, -12, -13, -14, -15, 0.125)
		assert.Equal(t, s, Must(SedenionF64{}.Parse(s.String())))

		var tr TrigintaduonionF64
		tr = tr.Fill(-1.5)
		assert.Equal(t, tr, Must(TrigintaduonionF64{}.Parse(tr.String())))
	})

	t.Run("tolerates spacing", func(t *testing.T) {
		o, err := OctonionF64{}.Parse("( 1+2i+3j+4k ,5+6i+7j+8k )")
		require.NoError(t, err)
		assert.Equal(t, octonion(1, 2, 3, 4, 5, 6, 7, 8), o)
	})
}

func TestText(t *testing.T) {
	q := NewQuaternionF64(1, 2, -3, 4)
	text, err := q.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1 + 2i - 3j + 4k", string(text))

	var back QuaternionF64
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, q, back)

	assert.ErrorIs(t, back.UnmarshalText([]byte("nope")), ErrParse)
	assert.Equal(t, q, back)
}
