package operations

import (
	"context"

	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/common"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// FunctionOps handles elementary functions
type FunctionOps struct {
	*common.Ops
}

var unaryFunctions = []struct {
	id, name, description, op string
}{
	{"hypercomplex.exp", "Exponential", "exp(re)·(cos θ + û·sin θ)", algebra.OpExp},
	{"hypercomplex.ln", "Natural Logarithm", "Principal logarithm ln|z| + θ·û", algebra.OpLn},
	{"hypercomplex.sqrt", "Square Root", "z^0.5 through the logarithm", algebra.OpSqrt},
	{"hypercomplex.sin", "Sine", "Sine through exp(i·z)", algebra.OpSin},
	{"hypercomplex.cos", "Cosine", "Cosine through exp(i·z)", algebra.OpCos},
	{"hypercomplex.tan", "Tangent", "sin(z)/cos(z)", algebra.OpTan},
	{"hypercomplex.sinh", "Hyperbolic Sine", "(exp(z) − exp(−z))/2", algebra.OpSinh},
	{"hypercomplex.cosh", "Hyperbolic Cosine", "(exp(z) + exp(−z))/2", algebra.OpCosh},
	{"hypercomplex.tanh", "Hyperbolic Tangent", "sinh(z)/cosh(z)", algebra.OpTanh},
}

// GetTools returns elementary function tool definitions
func (f *FunctionOps) GetTools() []types.Tool {
	tools := make([]types.Tool, 0, len(unaryFunctions)+5)
	for _, fn := range unaryFunctions {
		tools = append(tools, types.Tool{
			ID:          fn.id,
			Name:        fn.name,
			Description: fn.description,
			Parameters:  withAlgebra(valueParam("z", "Argument")),
			Returns:     "value",
		})
	}

	return append(tools,
		types.Tool{
			ID:          "hypercomplex.powf",
			Name:        "Real Power",
			Description: "exp(x·ln z)",
			Parameters: withAlgebra(valueParam("z", "Base"),
				types.Parameter{Name: "exponent", Type: "number", Description: "Real exponent", Required: true}),
			Returns: "value",
		},
		types.Tool{
			ID:          "hypercomplex.powz",
			Name:        "Hypercomplex Power",
			Description: "exp(w·ln z)",
			Parameters:  withAlgebra(valueParam("z", "Base"), valueParam("w", "Exponent")),
			Returns:     "value",
		},
		types.Tool{
			ID:          "hypercomplex.powu",
			Name:        "Unsigned Power",
			Description: "z^n by repeated squaring; z^0 is one",
			Parameters: withAlgebra(valueParam("z", "Base"),
				types.Parameter{Name: "n", Type: "number", Description: "Non-negative integer exponent", Required: true}),
			Returns: "value",
		},
		types.Tool{
			ID:          "hypercomplex.powi",
			Name:        "Integer Power",
			Description: "z^n for signed n; negative powers invert, and n = 0 yields zero",
			Parameters: withAlgebra(valueParam("z", "Base"),
				types.Parameter{Name: "n", Type: "number", Description: "Integer exponent", Required: true}),
			Returns: "value",
		},
		types.Tool{
			ID:          "hypercomplex.polar",
			Name:        "Polar Form",
			Description: "r and p with r·exp(p) = z",
			Parameters:  withAlgebra(valueParam("z", "Value")),
			Returns:     "object",
		},
	)
}

// Apply evaluates the unary function registered under toolID
func (f *FunctionOps) Apply(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	for _, fn := range unaryFunctions {
		if fn.id == toolID {
			return f.unary(params, fn.op)
		}
	}
	return common.Failure("unknown function: " + toolID)
}

// Handles reports whether toolID is one of the unary functions
func (f *FunctionOps) Handles(toolID string) bool {
	for _, fn := range unaryFunctions {
		if fn.id == toolID {
			return true
		}
	}
	return false
}

func (f *FunctionOps) unary(params map[string]interface{}, op string) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	result, err := z.Unary(op)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

// Powf raises z to a real exponent
func (f *FunctionOps) Powf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	x, ok := common.GetNumber(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}
	result, err := z.Scalar(algebra.OpPowf, x)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

// Powz raises z to a hypercomplex exponent
func (f *FunctionOps) Powz(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	w, err := f.Value(alg, params, "w")
	if err != nil {
		return common.Failure(err.Error())
	}
	result, err := z.Binary(algebra.OpPowz, w)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(result)
}

// Powu raises z to a non-negative integer
func (f *FunctionOps) Powu(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	n, ok := common.GetInt(params, "n")
	if !ok || n < 0 {
		return common.Failure("n must be a non-negative integer")
	}
	return common.ValueResult(z.Powu(uint32(n)))
}

// Powi raises z to a signed integer
func (f *FunctionOps) Powi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}
	return common.ValueResult(z.Powi(int32(n)))
}

// Polar splits z into magnitude and logarithm of its direction
func (f *FunctionOps) Polar(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	r, p := z.Polar()
	data := common.ValueData(p)
	data["radius"] = common.Float(r)
	return common.Success(data)
}
