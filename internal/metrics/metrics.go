package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the clubhouse server
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	PlayersCreatedTotal  prometheus.Counter
	SamplesRecordedTotal prometheus.Counter
	DrillsAssignedTotal  prometheus.Counter
	SMSAttemptsTotal     prometheus.Counter
	SMSFailuresTotal     prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhouse_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubhouse_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "clubhouse_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		PlayersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhouse_players_created_total",
				Help: "Total players created via form or CSV import",
			},
		),
		SamplesRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhouse_metric_samples_recorded_total",
				Help: "Total performance samples recorded",
			},
		),
		DrillsAssignedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhouse_drills_assigned_total",
				Help: "Total drill assignments created",
			},
		),
		SMSAttemptsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhouse_sms_attempts_total",
				Help: "Total outbound SMS attempts",
			},
		),
		SMSFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "clubhouse_sms_failures_total",
				Help: "Total outbound SMS attempts that failed (always swallowed)",
			},
		),
	}
}
