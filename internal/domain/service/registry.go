package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

var (
	ErrInvalidToolID   = errors.New("invalid tool ID format")
	ErrServiceNotFound = errors.New("service not found")
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// NewRegistry creates a new service registry. metrics may be nil.
func NewRegistry(logger *logging.Logger, metrics *monitoring.Metrics) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Registry{
		logger:  logger.Named("registry"),
		metrics: metrics,
	}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if strings.Contains(def.ID, ".") {
		return fmt.Errorf("service ID %q cannot contain '.'", def.ID)
	}

	r.services.Store(def.ID, provider)
	r.logger.Info("service registered",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)),
	)
	r.updateGauge()
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
	r.updateGauge()
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services ordered by ID, optionally filtered by category
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Discover returns the tools most relevant to a free-text intent
func (r *Registry) Discover(intent string, limit int) []types.Tool {
	type scoredTool struct {
		tool  types.Tool
		score float64
	}

	words := strings.Fields(strings.ToLower(intent))
	var results []scoredTool

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		for _, tool := range def.Tools {
			if score := relevance(words, def, tool); score > 0 {
				results = append(results, scoredTool{tool: tool, score: score})
			}
		}
		return true
	})

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].tool.ID < results[j].tool.ID
	})

	output := make([]types.Tool, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].tool)
	}
	return output
}

// Execute runs a service tool. A Go error means the tool could not be routed;
// tool-level failures come back as an unsuccessful Result.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok || serviceID == "" {
		return failure(ErrInvalidToolID.Error()), fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		r.recordError(serviceID, toolID, "not_found")
		return failure(fmt.Sprintf("service not found: %s", serviceID)), fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	var timer *monitoring.Timer
	if r.metrics != nil {
		timer = monitoring.NewTimer(r.metrics, serviceID, toolID)
	}

	result, err := provider.Execute(ctx, toolID, params, appCtx)

	status := "success"
	switch {
	case err != nil:
		status = "error"
		r.recordError(serviceID, toolID, "provider_error")
		r.logger.Error("tool execution error", append(r.fields(toolID, appCtx), zap.Error(err))...)
	case result == nil || !result.Success:
		status = "failure"
		r.recordError(serviceID, toolID, "tool_failure")
		msg := ""
		if result != nil && result.Error != nil {
			msg = *result.Error
		}
		r.logger.Warn("tool failed", append(r.fields(toolID, appCtx), zap.String("error", msg))...)
	default:
		r.logger.Debug("tool executed", r.fields(toolID, appCtx)...)
		if r.metrics != nil {
			if name, ok := result.Data["algebra"].(string); ok {
				r.metrics.RecordAlgebra(name)
			}
		}
	}

	if timer != nil {
		timer.Stop(status)
	}
	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) fields(toolID string, appCtx *types.Context) []zap.Field {
	fields := []zap.Field{zap.String("tool_id", toolID)}
	if appCtx != nil && appCtx.RequestID != "" {
		fields = append(fields, zap.String("request_id", appCtx.RequestID))
	}
	return fields
}

func (r *Registry) recordError(serviceID, toolID, kind string) {
	if r.metrics != nil {
		r.metrics.RecordServiceError(serviceID, toolID, kind)
	}
}

func (r *Registry) updateGauge() {
	if r.metrics == nil {
		return
	}
	count := 0
	r.services.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	r.metrics.SetRegistryServices(count)
}

func relevance(words []string, service types.Service, tool types.Tool) float64 {
	name := strings.ToLower(tool.Name)
	desc := strings.ToLower(tool.Description)

	score := 0.0
	for _, word := range words {
		switch {
		case word == name || strings.HasSuffix(tool.ID, "."+word):
			score += 10.0
		case strings.Contains(name, word):
			score += 5.0
		}
		if strings.Contains(desc, word) {
			score += 3.0
		}
		if strings.Contains(strings.ToLower(service.Description), word) {
			score += 1.0
		}
	}
	return score
}

func failure(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}
