// Package metrics exposes the Prometheus collectors for the smart
// server. Collectors are registered with the default registry via
// promauto and served by the router on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration observes request latency in seconds.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// ActiveRequests tracks requests currently being served.
	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of HTTP requests currently in flight",
		},
	)

	// PredictionsTotal counts prediction records served per model.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ml_predictions_total",
			Help: "Total number of prediction records served",
		},
		[]string{"model"},
	)
)

// RecordRequest records one completed HTTP request.
func RecordRequest(method, path, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, path, status).Inc()
	RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(delta int) {
	ActiveRequests.Add(float64(delta))
}

// RecordPredictions adds count served records for the named model.
func RecordPredictions(model string, count int) {
	PredictionsTotal.WithLabelValues(model).Add(float64(count))
}
