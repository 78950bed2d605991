package hypercomplex

import (
	"regexp"
	"strings"
)

const numeral = `[+-](?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`

// termPatterns[d] matches the flat notation of depth d once whitespace
// is removed and a leading sign is present. Every coefficient carries a
// sign so that "12i" can only read as twelve i.
var termPatterns = [...]*regexp.Regexp{
	1: regexp.MustCompile(`^(` + numeral + `)?(?:(` + numeral + `)[iI])?$`),
	2: regexp.MustCompile(`^(` + numeral + `)?(?:(` + numeral + `)[iI])?(?:(` + numeral + `)[jJ])?(?:(` + numeral + `)[kK])?$`),
}

// Parse reads the notation produced by String at z's depth. Missing
// coefficients default to zero, but at least one must be present.
func (z Number[T, F]) Parse(s string) (Number[T, F], error) {
	depth := z.Depth()
	if depth > 2 {
		return z.parsePair(s)
	}

	fail := &ParseError{Input: s, Depth: depth}
	text := strings.Join(strings.Fields(s), "")
	if text == "" {
		return Number[T, F]{}, fail
	}
	if text[0] != '+' && text[0] != '-' {
		text = "+" + text
	}
	m := termPatterns[depth].FindStringSubmatch(text)
	if m == nil {
		return Number[T, F]{}, fail
	}

	leaves := make([]F, z.Dim())
	for n, group := range m[1:] {
		if group == "" {
			continue
		}
		x, err := parseScalar[F](group)
		if err != nil {
			return Number[T, F]{}, fail
		}
		leaves[n] = x
	}
	return z.FromSlice(leaves)
}

// parsePair reads "(re, im)", splitting on the comma outside any nested
// parentheses.
func (z Number[T, F]) parsePair(s string) (Number[T, F], error) {
	fail := &ParseError{Input: s, Depth: z.Depth()}
	text := strings.TrimSpace(s)
	if len(text) < 2 || text[0] != '(' || text[len(text)-1] != ')' {
		return Number[T, F]{}, fail
	}
	left, right, ok := splitPair(text[1 : len(text)-1])
	if !ok {
		return Number[T, F]{}, fail
	}

	var t T
	re, err := t.Parse(left)
	if err != nil {
		return Number[T, F]{}, fail
	}
	im, err := t.Parse(right)
	if err != nil {
		return Number[T, F]{}, fail
	}
	return Number[T, F]{Re: re, Im: im}, nil
}

func splitPair(s string) (string, string, bool) {
	level := 0
	for n, r := range s {
		switch r {
		case '(':
			level++
		case ')':
			level--
			if level < 0 {
				return "", "", false
			}
		case ',':
			if level == 0 {
				left, right := strings.TrimSpace(s[:n]), strings.TrimSpace(s[n+1:])
				return left, right, left != "" && right != ""
			}
		}
	}
	return "", "", false
}
