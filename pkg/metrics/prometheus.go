// Package metrics provides Prometheus metrics for the sports day portal.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultRefreshInterval = 10 * time.Second
)

// defaultMatchedBuckets fit a sheet of a few hundred registrations.
var defaultMatchedBuckets = []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500} //nolint:gochecknoglobals // bucket layout

// Manager manages all Prometheus metrics for the portal.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	matchedBuckets   []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Engine metrics
	searches        *prometheus.CounterVec
	emptyQueries    prometheus.Counter
	teamUnresolved  prometheus.Counter
	matchedRecords  prometheus.Histogram
	searchLatency   prometheus.Histogram
	datasetRows     prometheus.Gauge
	datasetColumns  prometheus.Gauge
	datasetTeamCols prometheus.Gauge
	datasetLoadedAt prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Configure replaces the global manager with one built from opts on a fresh
// registry. Call it once at startup, before handlers take GetRegistry.
func Configure(opts ...Option) {
	customRegistry = prometheus.NewRegistry()
	globalManager = NewManager(append([]Option{WithPrometheusRegistry(customRegistry)}, opts...)...)
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sportsday",
		subsystem:        "portal",
		histogramBuckets: prometheus.DefBuckets,
		matchedBuckets:   defaultMatchedBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// RefreshInterval returns how often periodic gauges should be refreshed.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

// Enabled reports whether recording is switched on.
func (m *Manager) Enabled() bool { return m.enabled }

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: m.name(name), Help: help, ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: m.name(name), Help: help, ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: m.name(name), Help: help, ConstLabels: m.customLabels, Buckets: buckets,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // flat list of metric definitions
	auto := promauto.With(m.registry)

	m.searches = auto.NewCounterVec(m.counterOpts("searches_total", "Searches by resolved participation category"), []string{"category"})
	m.emptyQueries = auto.NewCounter(m.counterOpts("empty_queries_total", "Requests that supplied neither an individual nor a team query"))
	m.teamUnresolved = auto.NewCounter(m.counterOpts("team_column_unresolved_total", "Team queries answered without a team member column"))
	m.matchedRecords = auto.NewHistogram(m.histogramOpts("matched_records", "Registrations matched per search", m.matchedBuckets))
	m.searchLatency = auto.NewHistogram(m.histogramOpts("search_latency_milliseconds", "Engine time per search in milliseconds", m.histogramBuckets))

	m.datasetRows = auto.NewGauge(m.gaugeOpts("dataset_rows", "Registrations loaded from the record source"))
	m.datasetColumns = auto.NewGauge(m.gaugeOpts("dataset_columns", "Columns in the loaded sheet"))
	m.datasetTeamCols = auto.NewGauge(m.gaugeOpts("dataset_team_columns", "Columns recognised as team member columns"))
	m.datasetLoadedAt = auto.NewGauge(m.gaugeOpts("dataset_loaded_unix", "Unix time the dataset was loaded"))

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total", "HTTP requests by endpoint and method"), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets), []string{"endpoint", "method", "status_code"})

	m.errorRateByType = auto.NewCounterVec(m.counterOpts("errors_by_type_total", "Errors by type and severity"), []string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total", "Errors by endpoint"), []string{"endpoint", "method", "error_type"})
	m.errorLatency = auto.NewHistogramVec(m.histogramOpts("error_latency_milliseconds", "Latency of failed operations in milliseconds", m.histogramBuckets), []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes", "Heap bytes allocated"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_milliseconds", "Average GC pause in milliseconds", m.histogramBuckets))
}

// Engine metrics functions.

// RecordSearch counts a search by category and observes its match count and latency.
func RecordSearch(category string, matched int, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.searches.WithLabelValues(category).Inc()
	globalManager.matchedRecords.Observe(float64(matched))
	globalManager.searchLatency.Observe(latencyMs)
}

// RecordEmptyQuery counts a request without any query.
func RecordEmptyQuery() {
	globalManager.emptyQueries.Inc()
}

// RecordTeamColumnUnresolved counts a degraded team search.
func RecordTeamColumnUnresolved() {
	globalManager.teamUnresolved.Inc()
}

// UpdateDataset sets the dataset gauges.
func UpdateDataset(rows, columns, teamColumns int, loadedAt time.Time) {
	globalManager.datasetRows.Set(float64(rows))
	globalManager.datasetColumns.Set(float64(columns))
	globalManager.datasetTeamCols.Set(float64(teamColumns))
	globalManager.datasetLoadedAt.Set(float64(loadedAt.Unix()))
}

// HTTP metrics functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error metrics functions.

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System metrics functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// RefreshInterval returns how often the global manager wants periodic
// gauges refreshed.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
