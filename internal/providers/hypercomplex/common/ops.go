package common

import (
	"fmt"
	"math"
	"strconv"

	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// Defaults applies when a call omits dimension or precision.
type Defaults struct {
	Dimension int
	Precision int
	Tolerance float64
}

// Ops provides common hypercomplex helpers
type Ops struct {
	Defaults Defaults
}

// NewOps fills zero defaults with complex float64 and a 1e-9 tolerance
func NewOps(d Defaults) *Ops {
	if d.Dimension == 0 {
		d.Dimension = 2
	}
	if d.Precision == 0 {
		d.Precision = 64
	}
	if d.Tolerance == 0 {
		d.Tolerance = 1e-9
	}
	return &Ops{Defaults: d}
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// ValueResult reports v with its canonical text and coefficients
func ValueResult(v algebra.Value) (*types.Result, error) {
	return Success(ValueData(v))
}

// ValueData is the result payload describing v
func ValueData(v algebra.Value) map[string]interface{} {
	alg := v.Algebra()
	return map[string]interface{}{
		"result":       v.String(),
		"coefficients": Floats(v.Coefficients()),
		"algebra":      alg.Name(),
		"dimension":    alg.Dimension(),
		"precision":    alg.Precision(),
	}
}

// Float makes x safe for a JSON payload. NaN and infinities have no JSON
// number form and are reported as the strings "NaN", "+Inf" and "-Inf".
func Float(x float64) interface{} {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return x
}

// Floats applies Float to each element
func Floats(xs []float64) []interface{} {
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}
	return out
}

// Algebra resolves the dimension and precision parameters
func (o *Ops) Algebra(params map[string]interface{}) (algebra.Algebra, error) {
	dimension, precision := o.Defaults.Dimension, o.Defaults.Precision
	if _, present := params["dimension"]; present {
		d, ok := GetInt(params, "dimension")
		if !ok {
			return nil, fmt.Errorf("dimension must be an integer")
		}
		dimension = d
	}
	if _, present := params["precision"]; present {
		p, ok := GetInt(params, "precision")
		if !ok {
			return nil, fmt.Errorf("precision must be an integer")
		}
		precision = p
	}
	return algebra.Lookup(dimension, precision)
}

// Value reads a hypercomplex operand given as text or coefficients
func (o *Ops) Value(alg algebra.Algebra, params map[string]interface{}, key string) (algebra.Value, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%s parameter required", key)
	}
	v, err := o.decode(alg, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// Values reads an array of operands
func (o *Ops) Values(alg algebra.Algebra, params map[string]interface{}, key string) ([]algebra.Value, error) {
	arr, ok := params[key].([]interface{})
	if !ok || len(arr) == 0 {
		return nil, fmt.Errorf("%s array required", key)
	}
	values := make([]algebra.Value, 0, len(arr))
	for i, raw := range arr {
		v, err := o.decode(alg, raw)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Operand reads a parameter that may be a plain number or a hypercomplex
// value. Exactly one of the returned value and scalar is meaningful.
func (o *Ops) Operand(alg algebra.Algebra, params map[string]interface{}, key string) (algebra.Value, float64, bool, error) {
	if x, ok := GetNumber(params, key); ok {
		return nil, x, true, nil
	}
	v, err := o.Value(alg, params, key)
	return v, 0, false, err
}

func (o *Ops) decode(alg algebra.Algebra, raw interface{}) (algebra.Value, error) {
	switch v := raw.(type) {
	case string:
		return alg.Parse(v)
	case []interface{}:
		coefs, ok := toNumbers(v)
		if !ok {
			return nil, fmt.Errorf("coefficients must be numbers")
		}
		return alg.FromCoefficients(coefs)
	case []float64:
		return alg.FromCoefficients(v)
	default:
		return nil, fmt.Errorf("expected text or coefficient array, got %T", raw)
	}
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	return toNumber(params[key])
}

// GetInt extracts a whole number from params
func GetInt(params map[string]interface{}, key string) (int, bool) {
	x, ok := GetNumber(params, key)
	if !ok || x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
		return 0, false
	}
	return int(x), true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}
	return toNumbers(arr)
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

func toNumber(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case string:
		x, err := strconv.ParseFloat(v, 64)
		return x, err == nil
	default:
		return 0, false
	}
}

func toNumbers(arr []interface{}) ([]float64, bool) {
	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		x, ok := toNumber(v)
		if !ok {
			return nil, false
		}
		numbers = append(numbers, x)
	}
	return numbers, true
}
