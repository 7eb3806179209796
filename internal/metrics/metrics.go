package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Pipeline metrics
	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	stageDegraded    *prometheus.CounterVec
	llmTokens        *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),

		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finlens_analyses_total",
				Help: "Total number of completed analyses",
			},
			[]string{"outcome"},
		),

		analysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finlens_analysis_duration_seconds",
				Help:    "End-to-end analysis duration in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),

		stageDegraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finlens_stage_degraded_total",
				Help: "Pipeline stages that fell back to placeholder values",
			},
			[]string{"stage", "code"},
		),

		llmTokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finlens_llm_tokens_total",
				Help: "Tokens consumed by narrative generation",
			},
			[]string{"direction"},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)
	reg.MustRegister(r.analysesTotal)
	reg.MustRegister(r.analysisDuration)
	reg.MustRegister(r.stageDegraded)
	reg.MustRegister(r.llmTokens)

	return r
}

// RecordRequest records an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	r.httpRequestsTotal.WithLabelValues(method, path, statusClass(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments the in-flight gauge.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements the in-flight gauge.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordAnalysis records a completed analysis run.
func (r *Registry) RecordAnalysis(outcome string, duration float64) {
	r.analysesTotal.WithLabelValues(outcome).Inc()
	r.analysisDuration.Observe(duration)
}

// RecordDegradation records a pipeline stage falling back to a placeholder.
func (r *Registry) RecordDegradation(stage, code string) {
	r.stageDegraded.WithLabelValues(stage, code).Inc()
}

// RecordLLMTokens records narrative token consumption.
func (r *Registry) RecordLLMTokens(input, output int) {
	r.llmTokens.WithLabelValues("input").Add(float64(input))
	r.llmTokens.WithLabelValues("output").Add(float64(output))
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
