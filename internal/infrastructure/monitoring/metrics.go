package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for one server instance
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec
	ServiceErrors   *prometheus.CounterVec

	// Algebra metrics
	AlgebraOps *prometheus.CounterVec

	// Registry metrics
	RegistryServices prometheus.Gauge

	startTime time.Time

	// Snapshot for JSON API
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for the JSON API
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	ServiceCalls  int64   `json:"service_calls"`
	ServiceErrors int64   `json:"service_errors"`
	AvgLatencyMS  float64 `json:"avg_latency_ms"`
	UptimeSeconds float64 `json:"uptime_seconds"`

	totalDuration float64
}

// NewMetrics creates a metrics collector backed by its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hypercomplex_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hypercomplex_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		RequestSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hypercomplex_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hypercomplex_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		ServiceCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hypercomplex_service_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"service", "tool", "status"},
		),
		ServiceDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hypercomplex_service_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"service", "tool"},
		),
		ServiceErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hypercomplex_service_errors_total",
				Help: "Total number of failed tool executions",
			},
			[]string{"service", "tool", "error_type"},
		),

		AlgebraOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hypercomplex_algebra_operations_total",
				Help: "Tool executions by algebra",
			},
			[]string{"algebra"},
		),

		RegistryServices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hypercomplex_registry_services",
				Help: "Number of registered service providers",
			},
		),
	}

	uptime := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "hypercomplex_uptime_seconds",
			Help: "Server uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	reg.MustRegister(
		m.RequestsTotal, m.RequestDuration, m.RequestSize, m.ResponseSize,
		m.ServiceCalls, m.ServiceDuration, m.ServiceErrors,
		m.AlgebraOps, m.RegistryServices, uptime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format for this instance's registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.totalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordServiceCall records a tool execution
func (m *Metrics) RecordServiceCall(service, tool, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, tool, status).Inc()
	m.ServiceDuration.WithLabelValues(service, tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.ServiceCalls++
	m.mu.Unlock()
}

// RecordServiceError records a failed tool execution
func (m *Metrics) RecordServiceError(service, tool, errorType string) {
	m.ServiceErrors.WithLabelValues(service, tool, errorType).Inc()

	m.mu.Lock()
	m.snapshot.ServiceErrors++
	m.mu.Unlock()
}

// RecordAlgebra counts an execution against the named algebra
func (m *Metrics) RecordAlgebra(name string) {
	m.AlgebraOps.WithLabelValues(name).Inc()
}

// SetRegistryServices sets the number of registered providers
func (m *Metrics) SetRegistryServices(count int) {
	m.RegistryServices.Set(float64(count))
}

// Snapshot returns current values for the JSON API
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.snapshot
	if s.TotalRequests > 0 {
		s.AvgLatencyMS = s.totalDuration / float64(s.TotalRequests) * 1000
	}
	s.UptimeSeconds = time.Since(m.startTime).Seconds()
	return s
}
