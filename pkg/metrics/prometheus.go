// Package metrics provides Prometheus metrics for the melee forecast service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Simulation metrics
	simulationRuns  prometheus.Counter
	forecastBatches prometheus.Counter
	forecastRuns    prometheus.Counter
	forecastLatency prometheus.Histogram

	// Rating metrics
	ratingErrors prometheus.Counter

	// Roster metrics
	rosterSize         prometheus.Gauge
	excludedFighters   prometheus.Gauge
	rosterQueryLatency prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "melee",
		subsystem:        "forecast",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.simulationRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulation_runs_total",
		Help:      "Total number of single-elimination tournaments simulated",
	})

	m.forecastBatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "forecast_batches_total",
		Help:      "Total number of Monte Carlo forecast batches completed",
	})

	m.forecastRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "forecast_runs_total",
		Help:      "Total number of runs requested across forecast batches",
	})

	m.forecastLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "forecast_latency_milliseconds",
		Help:      "Histogram of forecast batch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.ratingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_errors_total",
		Help:      "Total number of rating requests that hit an incomplete record",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of fighters in the loaded roster",
	})

	m.excludedFighters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "excluded_fighters",
		Help:      "Fighters excluded from simulation for incomplete records",
	})

	m.rosterQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_query_latency_milliseconds",
		Help:      "Histogram of roster lookup latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordSimulationRun increments the simulated tournament counter.
func RecordSimulationRun() {
	globalManager.simulationRuns.Inc()
}

// RecordForecastBatch records one completed forecast batch of the given size.
func RecordForecastBatch(runs int) {
	globalManager.forecastBatches.Inc()
	globalManager.forecastRuns.Add(float64(runs))
}

// RecordForecastLatency records forecast batch latency in milliseconds.
func RecordForecastLatency(latencyMs float64) {
	globalManager.forecastLatency.Observe(latencyMs)
}

// RecordRatingError increments the incomplete-record counter.
func RecordRatingError() {
	globalManager.ratingErrors.Inc()
}

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(count int) {
	globalManager.rosterSize.Set(float64(count))
}

// UpdateExcludedFighters sets the excluded-fighter gauge.
func UpdateExcludedFighters(count int) {
	globalManager.excludedFighters.Set(float64(count))
}

// RecordRosterQueryLatency records roster lookup latency in milliseconds.
func RecordRosterQueryLatency(latencyMs float64) {
	globalManager.rosterQueryLatency.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
