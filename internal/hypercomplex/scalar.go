package hypercomplex

import (
	"strconv"
	"strings"
)

func formatScalar[F Scalar](x F) string {
	return strconv.FormatFloat(float64(x), 'g', -1, bitSize[F]())
}

func parseScalar[F Scalar](s string) (F, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize[F]())
	if err != nil {
		return 0, &ParseError{Input: s, Depth: 0}
	}
	return F(v), nil
}
