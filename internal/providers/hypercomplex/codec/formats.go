package codec

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/common"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// Document is the portable form of a value
type Document struct {
	Algebra      string    `json:"algebra" yaml:"algebra" toml:"algebra"`
	Dimension    int       `json:"dimension" yaml:"dimension" toml:"dimension"`
	Precision    int       `json:"precision" yaml:"precision" toml:"precision"`
	Text         string    `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty" toml:"coefficients,omitempty"`
}

// NewDocument describes v
func NewDocument(v algebra.Value) Document {
	alg := v.Algebra()
	return Document{
		Algebra:      alg.Name(),
		Dimension:    alg.Dimension(),
		Precision:    alg.Precision(),
		Text:         v.String(),
		Coefficients: v.Coefficients(),
	}
}

// Value rebuilds the value. Text wins over coefficients; when both are
// present they must agree within tol.
func (d Document) Value(tol float64) (algebra.Value, error) {
	alg, err := algebra.Lookup(d.Dimension, d.Precision)
	if err != nil {
		return nil, err
	}
	if d.Text == "" {
		return alg.FromCoefficients(d.Coefficients)
	}
	v, err := alg.Parse(d.Text)
	if err != nil {
		return nil, err
	}
	if len(d.Coefficients) > 0 {
		c, err := alg.FromCoefficients(d.Coefficients)
		if err != nil {
			return nil, err
		}
		if !v.EqualApprox(c, tol) {
			return nil, fmt.Errorf("text %q disagrees with coefficients %v", d.Text, d.Coefficients)
		}
	}
	return v, nil
}

// Format names a document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Encode serializes d
func Encode(d Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sonic.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatTOML:
		return toml.Marshal(d)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// Decode parses a document
func Decode(data []byte, format Format) (Document, error) {
	var d Document
	var err error
	switch format {
	case FormatJSON:
		err = sonic.Unmarshal(data, &d)
	case FormatYAML:
		err = yaml.Unmarshal(data, &d)
	case FormatTOML:
		err = toml.Unmarshal(data, &d)
	default:
		return d, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return d, fmt.Errorf("%s decode error: %w", format, err)
	}
	return d, nil
}

// FormatOps handles document import and export
type FormatOps struct {
	*common.Ops
}

// GetTools returns codec tool definitions
func (f *FormatOps) GetTools() []types.Tool {
	formatParam := types.Parameter{Name: "format", Type: "string", Description: "json, yaml or toml (default json)", Required: false}
	return []types.Tool{
		{
			ID:          "hypercomplex.export",
			Name:        "Export",
			Description: "Encode a value as a JSON, YAML or TOML document",
			Parameters: []types.Parameter{
				{Name: "z", Type: "string|array", Description: "Value", Required: true},
				formatParam,
				{Name: "dimension", Type: "number", Description: "Coefficient count (default 2)", Required: false},
				{Name: "precision", Type: "number", Description: "Leaf precision in bits (default 64)", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "hypercomplex.import",
			Name:        "Import",
			Description: "Decode a document produced by export",
			Parameters: []types.Parameter{
				{Name: "document", Type: "string", Description: "Encoded document", Required: true},
				formatParam,
			},
			Returns: "value",
		},
	}
}

func format(params map[string]interface{}) Format {
	if f, ok := common.GetString(params, "format"); ok && f != "" {
		return Format(f)
	}
	return FormatJSON
}

// Export encodes a value
func (f *FormatOps) Export(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alg, err := f.Algebra(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	z, err := f.Value(alg, params, "z")
	if err != nil {
		return common.Failure(err.Error())
	}
	fmtName := format(params)
	data, err := Encode(NewDocument(z), fmtName)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"document": string(data), "format": string(fmtName)})
}

// Import decodes a document
func (f *FormatOps) Import(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	raw, ok := common.GetString(params, "document")
	if !ok || raw == "" {
		return common.Failure("document parameter required")
	}
	doc, err := Decode([]byte(raw), format(params))
	if err != nil {
		return common.Failure(err.Error())
	}
	v, err := doc.Value(f.Defaults.Tolerance)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.ValueResult(v)
}
