package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/hypercomplex/internal/domain/service"
	"github.com/GriffinCanCode/hypercomplex/internal/hypercomplex/algebra"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/id"
	"github.com/GriffinCanCode/hypercomplex/internal/shared/types"
)

// Version is reported by the root endpoint
const Version = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
	}
}

// DiscoverRequest asks for tools matching a free-text query
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// AlgebraInfo describes one supported algebra
type AlgebraInfo struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
	Precision int    `json:"precision"`
}

// Root handles the liveness probe
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Hypercomplex Service (Go)",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"algebras":         len(algebra.Supported()),
	})
}

// ListServices lists registered services, optionally by category
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		if err := validateCategory(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cat := types.Category(raw)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices returns tools relevant to a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query": req.Query,
		"tools": h.registry.Discover(req.Query, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := id.NewRequestID()
	c.Header("X-Request-ID", requestID.String())

	appCtx := &types.Context{
		AppID:     req.AppID,
		RequestID: requestID.String(),
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrInvalidToolID):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    result.Success,
		"data":       result.Data,
		"error":      result.Error,
		"request_id": requestID,
		"trace_id":   tracing.GetTraceID(c.Request.Context()),
	})
}

// ListAlgebras lists every supported dimension and precision
func (h *Handlers) ListAlgebras(c *gin.Context) {
	supported := algebra.Supported()
	infos := make([]AlgebraInfo, 0, len(supported))
	for _, a := range supported {
		infos = append(infos, AlgebraInfo{
			Name:      a.Name(),
			Dimension: a.Dimension(),
			Precision: a.Precision(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"algebras": infos})
}

// Stats returns a JSON snapshot of request and tool metrics
func (h *Handlers) Stats(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
