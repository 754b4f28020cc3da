// Package middleware provides cross-cutting concerns for the
// opinion-landscape engine.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-agora/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of landscape composition:
// latency, degenerate-cluster rates, hull sizes, and polarization.
type PrometheusMetrics struct {
	composeLatency    *prometheus.HistogramVec
	operationCounter  *prometheus.CounterVec
	hullVertices      *prometheus.HistogramVec
	polarizationLevel *prometheus.GaugeVec
	systemGauges      *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and
// registers all required metrics in the global Prometheus registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		composeLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "landscape_compose_duration_seconds",
				Help:    "Execution time of landscape composition operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "poll_id"},
		),
		operationCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landscape_operations_total",
				Help: "Total number of composition operations by outcome.",
			},
			[]string{"operation", "status", "poll_id"},
		),
		hullVertices: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "landscape_hull_vertices",
				Help:    "Distribution of convex hull vertex counts per cluster.",
				Buckets: []float64{0, 3, 4, 6, 8, 12, 16, 24, 32, 64},
			},
			[]string{"poll_id"},
		),
		polarizationLevel: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "landscape_polarization_level",
				Help: "Most recent aggregate polarization score (0-100).",
			},
			[]string{"poll_id"},
		),
		systemGauges: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "landscape_system_state",
				Help: "Current system state values for the landscape composer.",
			},
			[]string{"metric", "poll_id"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pollID, ok := labels["poll_id"]
	if !ok {
		pollID = "unknown"
	}
	pm.composeLatency.WithLabelValues(operation, pollID).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	pollID, ok := labels["poll_id"]
	if !ok {
		pollID = "unknown"
	}

	status, ok := labels["status"]
	if !ok {
		status = "success"
	}
	pm.operationCounter.WithLabelValues(metric, status, pollID).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pollID, ok := labels["poll_id"]
	if !ok {
		pollID = "unknown"
	}

	switch metric {
	case "polarization_level":
		pm.polarizationLevel.WithLabelValues(pollID).Set(value)
	default:
		pm.systemGauges.WithLabelValues(metric, pollID).Set(value)
	}
}

// RecordHistogram implements the MetricsCollector interface by recording
// values in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	pollID, ok := labels["poll_id"]
	if !ok {
		pollID = "unknown"
	}

	switch metric {
	case "hull_vertices":
		pm.hullVertices.WithLabelValues(pollID).Observe(value)
	default:
		pm.composeLatency.WithLabelValues(metric, pollID).Observe(value)
	}
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
