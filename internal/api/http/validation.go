package http

import (
	"fmt"
	"regexp"

	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

const (
	maxToolIDLength = 128
	maxQueryLength  = 1024
)

var toolIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*\.[a-z][a-z0-9_.]*$`)

func validateToolID(toolID string) error {
	if len(toolID) > maxToolIDLength {
		return fmt.Errorf("tool_id exceeds %d characters", maxToolIDLength)
	}
	if !toolIDPattern.MatchString(toolID) {
		return fmt.Errorf("tool_id must look like <service>.<tool>, got %q", toolID)
	}
	return nil
}

func validateCategory(category string) error {
	switch types.Category(category) {
	case types.CategoryMath, types.CategorySystem:
		return nil
	}
	return fmt.Errorf("unknown category %q", category)
}

func validateQuery(query string) error {
	if query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if len(query) > maxQueryLength {
		return fmt.Errorf("query exceeds %d characters", maxQueryLength)
	}
	return nil
}
