package hypercomplex

import (
	"errors"
	"fmt"
)

var (
	ErrParse  = errors.New("hypercomplex: invalid syntax")
	ErrLength = errors.New("hypercomplex: invalid coefficient count")
	ErrBasis  = errors.New("hypercomplex: undefined basis element")
)

// ParseError records text that could not be parsed at a given depth.
type ParseError struct {
	Input string
	Depth int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hypercomplex: cannot parse %q at depth %d", e.Input, e.Depth)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// LengthError reports a flat coefficient slice of the wrong size.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("hypercomplex: need %d coefficients, got %d", e.Want, e.Got)
}

func (e *LengthError) Unwrap() error { return ErrLength }
