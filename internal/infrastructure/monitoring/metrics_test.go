package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewMetricsIsolated(t *testing.T) {
	// Two instances must not conflict on registration
	a := NewMetrics()
	b := NewMetrics()

	a.RecordServiceCall("hypercomplex", "hypercomplex.add", "success", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ServiceCalls.WithLabelValues("hypercomplex", "hypercomplex.add", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ServiceCalls.WithLabelValues("hypercomplex", "hypercomplex.add", "success")))
}

func TestSnapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest("GET", "/health", "200", 10*time.Millisecond, 0, 64)
	m.RecordHTTPRequest("POST", "/services/execute", "400", 30*time.Millisecond, 128, 32)
	m.RecordServiceCall("hypercomplex", "hypercomplex.div", "error", time.Microsecond)
	m.RecordServiceError("hypercomplex", "hypercomplex.div", "tool_failure")

	s := m.Snapshot()
	assert.Equal(t, int64(2), s.TotalRequests)
	assert.Equal(t, int64(1), s.TotalErrors)
	assert.Equal(t, int64(1), s.ServiceCalls)
	assert.Equal(t, int64(1), s.ServiceErrors)
	assert.InDelta(t, 20.0, s.AvgLatencyMS, 1e-9)
	assert.GreaterOrEqual(t, s.UptimeSeconds, 0.0)
}

func TestMiddleware(t *testing.T) {
	m := NewMetrics()
	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/algebras/:name", func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("name"))
	})

	for _, name := range []string{"complex", "quaternion"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/algebras/"+name, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/algebras/:name", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordAlgebra("quaternion-f64")
	m.SetRegistryServices(1)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `hypercomplex_algebra_operations_total{algebra="quaternion-f64"} 1`)
	assert.Contains(t, body, "hypercomplex_registry_services 1")
	assert.Contains(t, body, "hypercomplex_uptime_seconds")
}

func TestTimer(t *testing.T) {
	m := NewMetrics()
	timer := NewTimer(m, "hypercomplex", "hypercomplex.exp")
	timer.Stop("success")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues("hypercomplex", "hypercomplex.exp", "success")))
}
