package operations

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/common"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// ArithmeticOps handles construction and ring operations
type ArithmeticOps struct {
	*common.Ops
}

var (
	dimensionParam = types.Parameter{Name: "dimension", Type: "number", Description: "Coefficient count: 2, 4, 8, 16 or 32 (default 2)", Required: false}
	precisionParam = types.Parameter{Name: "precision", Type: "number", Description: "Leaf precision in bits: 32 or 64 (default 64)", Required: false}
)

func valueParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "string|array", Description: description, Required: true}
}

func operandParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "string|array|number", Description: description, Required: true}
}

func withAlgebra(params ...types.Parameter) []types.Parameter {
	return append(params, dimensionParam, precisionParam)
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "hypercomplex.parse",
			Name:        "Parse",
			Description: "Parse text such as 1+2i, 1+2i+3j+4k or (x, y) into canonical form",
			Parameters:  withAlgebra(types.Parameter{Name: "text", Type: "string", Description: "Value text", Required: true}),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.construct",
			Name:        "Construct",
			Description: "Build a value from flat coefficients; the count must equal the dimension",
			Parameters:  withAlgebra(types.Parameter{Name: "coefficients", Type: "array", Description: "Leaf coefficients", Required: true}),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.add",
			Name:        "Add",
			Description: "Add a and b; a plain number only shifts the real part",
			Parameters:  withAlgebra(operandParam("a", "Left operand"), operandParam("b", "Right operand")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters:  withAlgebra(operandParam("a", "Left operand"), operandParam("b", "Right operand")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.multiply",
			Name:        "Multiply",
			Description: "Cayley-Dickson product a·b (order matters from quaternions on)",
			Parameters:  withAlgebra(operandParam("a", "Left operand"), operandParam("b", "Right operand")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.divide",
			Name:        "Divide",
			Description: "Divide a by b as a·conj(b)/|b|²",
			Parameters:  withAlgebra(operandParam("a", "Dividend"), operandParam("b", "Divisor")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.remainder",
			Name:        "Remainder",
			Description: "Remainder a − b·trunc(a/b)",
			Parameters:  withAlgebra(operandParam("a", "Dividend"), operandParam("b", "Divisor")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.negate",
			Name:        "Negate",
			Description: "Negate every coefficient",
			Parameters:  withAlgebra(valueParam("z", "Value")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.conjugate",
			Name:        "Conjugate",
			Description: "Negate every imaginary coefficient",
			Parameters:  withAlgebra(valueParam("z", "Value")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.norm",
			Name:        "Norm",
			Description: "Euclidean norm and squared norm",
			Parameters:  withAlgebra(valueParam("z", "Value")),
			Returns:     "number",
		},
		{
			ID:          "hypercomplex.real",
			Name:        "Real Part",
			Description: "Real coefficient",
			Parameters:  withAlgebra(valueParam("z", "Value")),
			Returns:     "number",
		},
		{
			ID:          "hypercomplex.scale",
			Name:        "Scale",
			Description: "Multiply every coefficient by factor",
			Parameters: withAlgebra(valueParam("z", "Value"),
				types.Parameter{Name: "factor", Type: "number", Description: "Scale factor", Required: true}),
			Returns: "value",
		},
		{
			ID:          "hypercomplex.shift",
			Name:        "Shift",
			Description: "Add x to the real coefficient only",
			Parameters: withAlgebra(valueParam("z", "Value"),
				types.Parameter{Name: "x", Type: "number", Description: "Real offset", Required: true}),
			Returns: "value",
		},
		{
			ID:          "hypercomplex.inverse",
			Name:        "Inverse",
			Description: "Multiplicative inverse conj(z)/|z|²",
			Parameters:  withAlgebra(valueParam("z", "Value")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.sum",
			Name:        "Sum",
			Description: "Sum of values starting from zero",
			Parameters:  withAlgebra(types.Parameter{Name: "values", Type: "array", Description: "Values to add", Required: true}),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.product",
			Name:        "Product",
			Description: "Left-to-right product of values starting from one",
			Parameters:  withAlgebra(types.Parameter{Name: "values", Type: "array", Description: "Values to multiply", Required: true}),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.round",
			Name:        "Round",
			Description: "Round every coefficient",
			Parameters: withAlgebra(valueParam("z", "Value"),
				types.Parameter{Name: "mode", Type: "string", Description: "floor, ceil, round, trunc or fract (default round)", Required: false}),
			Returns: "value",
		},
		{
			ID:          "hypercomplex.basis",
			Name:        "Basis Element",
			Description: "Unit for 1, i, j, k or e<n>",
			Parameters:  withAlgebra(types.Parameter{Name: "label", Type: "string", Description: "Basis label", Required: true}),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.commutator",
			Name:        "Commutator",
			Description: "a·b − b·a",
			Parameters:  withAlgebra(valueParam("a", "First value"), valueParam("b", "Second value")),
			Returns:     "value",
		},
		{
			ID:          "hypercomplex.associator",
			Name:        "Associator",
			Description: "(a·b)·c − a·(b·c)",
			Parameters:  withAlgebra(valueParam("a", "First value"), valueParam("b", "Second value"), valueParam("c", "Third value")),
			Returns:     "value",
		},
	}
}

// Parse normalizes value text
func (a *ArithmeticOps) Parse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	text, ok := common.GetString(params, "text")
	if !ok {
		return common.Failure("text parameter required")
	}
	v, err := alg.Parse(text)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(v)
}

// Construct builds a value from coefficients
func (a *ArithmeticOps) Construct(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	coefs, ok := common.GetNumbers(params, "coefficients")
	if !ok {
		return common.Failure("coefficients array required")
	}
	v, err := alg.FromCoefficients(coefs)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(v)
}

func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.combine(params, algebra.OpAdd, algebra.OpAdd)
}

func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.combine(params, algebra.OpSub, algebra.OpScalarSub)
}

func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.combine(params, algebra.OpMul, algebra.OpMul)
}

func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.combine(params, algebra.OpDiv, algebra.OpScalarDiv)
}

func (a *ArithmeticOps) Remainder(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.combine(params, algebra.OpRem, algebra.OpScalarRem)
}

// combine applies op to a and b. When a is a plain number and b a value,
// leftOp computes a∘b from b's side.
func (a *ArithmeticOps) combine(params map[string]interface{}, op, leftOp string) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	va, xa, scalarA, err := a.Operand(alg, params, "a")
	if err != nil {
		return common.Failure(err.Error())
	}
	vb, xb, scalarB, err := a.Operand(alg, params, "b")
	if err != nil {
		return common.Failure(err.Error())
	}

	var result algebra.Value
	switch {
	case scalarA && scalarB:
		result, err = alg.One().Scalar(algebra.OpMul, xa)
		if err == nil {
			result, err = result.Scalar(op, xb)
		}
	case scalarA:
		result, err = vb.Scalar(leftOp, xa)
	case scalarB:
		result, err = va.Scalar(op, xb)
	default:
		result, err = va.Binary(op, vb)
	}
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

func (a *ArithmeticOps) Negate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.unary(params, algebra.OpNeg)
}

func (a *ArithmeticOps) Conjugate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.unary(params, algebra.OpConj)
}

func (a *ArithmeticOps) Inverse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.unary(params, algebra.OpInv)
}

var roundModes = map[string]string{
	"floor": algebra.OpFloor,
	"ceil":  algebra.OpCeil,
	"round": algebra.OpRound,
	"trunc": algebra.OpTrunc,
	"fract": algebra.OpFract,
}

// Round applies a coefficient-wise rounding mode
func (a *ArithmeticOps) Round(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mode := "round"
	if m, ok := common.GetString(params, "mode"); ok && m != "" {
		mode = m
	}
	op, ok := roundModes[mode]
	if !ok {
		return common.Failure(fmt.Sprintf("unknown rounding mode: %s", mode))
	}
	return a.unary(params, op)
}

func (a *ArithmeticOps) unary(params map[string]interface{}, op string) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := a.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	result, err := z.Unary(op)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

// Norm reports |z| and |z|²
func (a *ArithmeticOps) Norm(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := a.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": common.Float(z.Norm()), "abs_sq": common.Float(z.AbsSq())})
}

// Real reports the real coefficient
func (a *ArithmeticOps) Real(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := a.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": common.Float(z.Real())})
}

func (a *ArithmeticOps) Scale(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.withScalar(params, "factor", algebra.OpMul)
}

func (a *ArithmeticOps) Shift(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.withScalar(params, "x", algebra.OpAdd)
}

func (a *ArithmeticOps) withScalar(params map[string]interface{}, key, op string) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := a.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	x, ok := common.GetNumber(params, key)
	if !ok {
		return common.Failure(key + " parameter required")
	}
	result, err := z.Scalar(op, x)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

func (a *ArithmeticOps) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.fold(params, algebra.OpAdd, algebra.Algebra.Zero)
}

func (a *ArithmeticOps) Product(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.fold(params, algebra.OpMul, algebra.Algebra.One)
}

func (a *ArithmeticOps) fold(params map[string]interface{}, op string, identity func(algebra.Algebra) algebra.Value) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	values, err := a.Values(alg, params, "values")
	if err != nil {
		return common.Failure(err.Error())
	}
	acc := identity(alg)
	for _, v := range values {
		if acc, err = acc.Binary(op, v); err != nil {
			return common.Failure(err.Error())
		}
	}
	return common.ValueResult(acc)
}

// Basis returns a unit element
func (a *ArithmeticOps) Basis(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	label, ok := common.GetString(params, "label")
	if !ok {
		return common.Failure("label parameter required")
	}
	v, err := alg.Basis(label)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(v)
}

func (a *ArithmeticOps) Commutator(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	x, err := a.Value(alg, params, "a")
	if err != nil {
		return common.Failure(err.Error())
	}
	y, err := a.Value(alg, params, "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	result, err := x.Binary(algebra.OpCommutator, y)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

func (a *ArithmeticOps) Associator(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := a.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	values := make([]algebra.Value, 0, 3)
	for _, key := range []string{"a", "b", "c"} {
		v, err := a.Value(alg, params, key)
		if err != nil {
			return common.Failure(err.Error())
		}
		values = append(values, v)
	}
	result, err := values[0].Associator(values[1], values[2])
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}
