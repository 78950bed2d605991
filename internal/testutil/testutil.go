// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategorySystem)).Maybe()

	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertDataField is a helper to assert a data field exists and matches expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	if result.Data == nil {
		t.Fatal("Result data is nil")
	}

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}

	if actual != expected {
		t.Fatalf("Field %s: expected %v, got %v", field, expected, actual)
	}
}

// Coefficients reads the coefficients field of a value result. Non-finite
// entries arrive as strings and are parsed back.
func Coefficients(t *testing.T, result *types.Result) []float64 {
	t.Helper()
	AssertSuccess(t, result)

	raw, ok := result.Data["coefficients"].([]interface{})
	if !ok {
		t.Fatalf("coefficients: unexpected type %T", result.Data["coefficients"])
	}
	out := make([]float64, len(raw))
	for i, c := range raw {
		switch v := c.(type) {
		case float64:
			out[i] = v
		case string:
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				t.Fatalf("coefficient %d: %v", i, err)
			}
			out[i] = x
		default:
			t.Fatalf("coefficient %d: unexpected type %T", i, c)
		}
	}
	return out
}
