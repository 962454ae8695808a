// Package metrics provides Prometheus metrics for the Marquee
// recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics
	recommendationPages prometheus.Counter
	emptyPages          prometheus.Counter
	impressions         prometheus.Counter
	candidatesScored    prometheus.Counter
	scoringDuration     prometheus.Histogram

	// Catalog and local-state health
	catalogSize   prometheus.Gauge
	listSize      *prometheus.GaugeVec
	listMutations *prometheus.CounterVec

	// HTTP performance
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Fault tracking
	errorsByEndpoint *prometheus.CounterVec
	internalFaults   prometheus.Counter

	// Process health
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "marquee",
		subsystem:        "recs",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
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

	m.recommendationPages = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_total",
		Help:      "Total number of recommendation pages served",
	})

	m.emptyPages = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_pages_total",
		Help:      "Total number of recommendation pages served with zero rows",
	})

	m.impressions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "impressions_total",
		Help:      "Total number of recommendation rows surfaced to clients",
	})

	m.candidatesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scored_total",
		Help:      "Total number of catalog candidates run through the scorer",
	})

	m.scoringDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_duration_milliseconds",
		Help:      "Histogram of full-page scoring duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of events currently in the catalog",
	})

	m.listSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "list_size",
		Help:      "Number of ids held per local list",
	}, []string{"list"})

	m.listMutations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "list_mutations_total",
		Help:      "Total local-list mutations by list and operation",
	}, []string{"list", "op"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Total error responses by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.internalFaults = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "internal_faults_total",
		Help:      "Total unexpected internal faults recovered at the service boundary",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the registry metrics are exposed from.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordRecommendationPage counts one served page and its rows.
func RecordRecommendationPage(rows int) {
	if !globalManager.enabled {
		return
	}
	globalManager.recommendationPages.Inc()
	if rows == 0 {
		globalManager.emptyPages.Inc()
		return
	}
	globalManager.impressions.Add(float64(rows))
}

// RecordCandidatesScored counts candidates run through the scorer.
func RecordCandidatesScored(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.candidatesScored.Add(float64(n))
	}
}

// RecordScoringDuration records one full-page scoring pass in milliseconds.
func RecordScoringDuration(ms float64) {
	if globalManager.enabled {
		globalManager.scoringDuration.Observe(ms)
	}
}

// UpdateCatalogSize sets the current catalog size gauge.
func UpdateCatalogSize(n int) {
	if globalManager.enabled {
		globalManager.catalogSize.Set(float64(n))
	}
}

// UpdateListSize sets the per-list size gauge.
func UpdateListSize(list string, n int) {
	if globalManager.enabled {
		globalManager.listSize.WithLabelValues(list).Set(float64(n))
	}
}

// RecordListMutation counts one local-list add or remove.
func RecordListMutation(list, op string) {
	if globalManager.enabled {
		globalManager.listMutations.WithLabelValues(list, op).Inc()
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records one HTTP request duration in ms.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// RecordErrorByEndpoint counts one error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordInternalFault counts one recovered internal fault.
func RecordInternalFault() {
	if globalManager.enabled {
		globalManager.internalFaults.Inc()
	}
}

// UpdateSystemMemoryUsage sets the current heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the current goroutine count gauge.
func UpdateSystemGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(n))
	}
}

// RecordSystemGCPauseTime records the average GC pause time in ms.
func RecordSystemGCPauseTime(ms float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(ms)
	}
}
