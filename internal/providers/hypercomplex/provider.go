package hypercomplex

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/codec"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/common"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/operations"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// Provider implements hypercomplex operations
type Provider struct {
	arithmetic *operations.ArithmeticOps
	functions  *operations.FunctionOps
	formats    *codec.FormatOps
}

// NewProvider creates a modular hypercomplex provider
func NewProvider(defaults common.Defaults) *Provider {
	ops := common.NewOps(defaults)

	return &Provider{
		arithmetic: &operations.ArithmeticOps{Ops: ops},
		functions:  &operations.FunctionOps{Ops: ops},
		formats:    &codec.FormatOps{Ops: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.functions.GetTools()...)
	tools = append(tools, p.formats.GetTools()...)

	return types.Service{
		ID:          "hypercomplex",
		Name:        "Hypercomplex Service",
		Description: "Complex numbers, quaternions, octonions, sedenions and trigintaduonions",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"functions",
			"serialization",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	// Construction and arithmetic
	case "hypercomplex.parse":
		return p.arithmetic.Parse(ctx, params, appCtx)
	case "hypercomplex.construct":
		return p.arithmetic.Construct(ctx, params, appCtx)
	case "hypercomplex.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "hypercomplex.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "hypercomplex.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "hypercomplex.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)
	case "hypercomplex.remainder":
		return p.arithmetic.Remainder(ctx, params, appCtx)
	case "hypercomplex.negate":
		return p.arithmetic.Negate(ctx, params, appCtx)
	case "hypercomplex.conjugate":
		return p.arithmetic.Conjugate(ctx, params, appCtx)
	case "hypercomplex.norm":
		return p.arithmetic.Norm(ctx, params, appCtx)
	case "hypercomplex.real":
		return p.arithmetic.Real(ctx, params, appCtx)
	case "hypercomplex.scale":
		return p.arithmetic.Scale(ctx, params, appCtx)
	case "hypercomplex.shift":
		return p.arithmetic.Shift(ctx, params, appCtx)
	case "hypercomplex.inverse":
		return p.arithmetic.Inverse(ctx, params, appCtx)
	case "hypercomplex.sum":
		return p.arithmetic.Sum(ctx, params, appCtx)
	case "hypercomplex.product":
		return p.arithmetic.Product(ctx, params, appCtx)
	case "hypercomplex.round":
		return p.arithmetic.Round(ctx, params, appCtx)
	case "hypercomplex.basis":
		return p.arithmetic.Basis(ctx, params, appCtx)
	case "hypercomplex.commutator":
		return p.arithmetic.Commutator(ctx, params, appCtx)
	case "hypercomplex.associator":
		return p.arithmetic.Associator(ctx, params, appCtx)

	// Powers and polar form
	case "hypercomplex.powf":
		return p.functions.Powf(ctx, params, appCtx)
	case "hypercomplex.powz":
		return p.functions.Powz(ctx, params, appCtx)
	case "hypercomplex.powu":
		return p.functions.Powu(ctx, params, appCtx)
	case "hypercomplex.powi":
		return p.functions.Powi(ctx, params, appCtx)
	case "hypercomplex.polar":
		return p.functions.Polar(ctx, params, appCtx)

	// Documents
	case "hypercomplex.export":
		return p.formats.Export(ctx, params, appCtx)
	case "hypercomplex.import":
		return p.formats.Import(ctx, params, appCtx)
	}

	if p.functions.Handles(toolID) {
		return p.functions.Apply(ctx, toolID, params, appCtx)
	}
	return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
}
