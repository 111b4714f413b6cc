// Package metrics provides Prometheus metrics for the riftcard render service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the render service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Render metrics - one report per request, success or fatal error.
	rendersTotal    *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	renderErrors    *prometheus.CounterVec
	composeDuration prometheus.Histogram

	// Asset resolver metrics.
	assetCacheHits    prometheus.Counter
	assetCacheMisses  prometheus.Counter
	assetFetchLatency prometheus.Histogram
	assetFetchErrors  prometheus.Counter
	assetCacheSize    prometheus.Gauge

	// Prefetch pool metrics.
	prefetchWarmed prometheus.Counter
	prefetchFailed prometheus.Counter

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// customRegistry keeps our metrics separate from the default registry so the
// /metrics endpoint only exposes what we intentionally emit.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // single registry per process

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "riftcard",
		subsystem:        "render",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rendersTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "reports_total",
		Help:        "Total match reports rendered, labeled by match variant.",
		ConstLabels: m.customLabels,
	}, []string{"variant"})

	m.renderDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duration_ms",
		Help:        "End-to-end render duration (normalize+compose+raster) in milliseconds.",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, []string{"variant"})

	m.renderErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Fatal render failures, labeled by error kind.",
		ConstLabels: m.customLabels,
	}, []string{"kind"})

	m.composeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "compose_duration_ms",
		Help:        "Layout-tree composition duration in milliseconds.",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	})

	m.assetCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "cache_hits_total",
		Help:        "Asset lookups served from the in-process cache.",
		ConstLabels: m.customLabels,
	})

	m.assetCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "cache_misses_total",
		Help:        "Asset lookups that required a loader fetch.",
		ConstLabels: m.customLabels,
	})

	m.assetFetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "fetch_latency_ms",
		Help:        "Loader fetch latency on cache miss in milliseconds.",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	})

	m.assetFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "fetch_errors_total",
		Help:        "Loader fetch failures (missing or unreachable assets).",
		ConstLabels: m.customLabels,
	})

	m.assetCacheSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "cache_entries",
		Help:        "Number of assets resident in the cache.",
		ConstLabels: m.customLabels,
	})

	m.prefetchWarmed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "prefetch_warmed_total",
		Help:        "Assets warmed by the startup prefetch pool.",
		ConstLabels: m.customLabels,
	})

	m.prefetchFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "assets",
		Name:        "prefetch_failed_total",
		Help:        "Prefetch attempts that failed; renders will fetch on demand.",
		ConstLabels: m.customLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "HTTP requests by endpoint, method and status code.",
		ConstLabels: m.customLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "request_duration_ms",
		Help:        "HTTP request duration in milliseconds.",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.customLabels,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordRender records a completed report render for a match variant.
func RecordRender(variant string) {
	globalManager.rendersTotal.WithLabelValues(variant).Inc()
}

// RecordRenderDuration records end-to-end render latency in milliseconds.
func RecordRenderDuration(variant string, durationMs float64) {
	globalManager.renderDuration.WithLabelValues(variant).Observe(durationMs)
}

// RecordRenderError records a fatal render failure by error kind.
func RecordRenderError(kind string) {
	globalManager.renderErrors.WithLabelValues(kind).Inc()
}

// RecordComposeDuration records layout-tree composition latency in milliseconds.
func RecordComposeDuration(durationMs float64) {
	globalManager.composeDuration.Observe(durationMs)
}

// RecordAssetCacheHit records an asset lookup served from cache.
func RecordAssetCacheHit() {
	globalManager.assetCacheHits.Inc()
}

// RecordAssetCacheMiss records an asset lookup that went to the loader.
func RecordAssetCacheMiss() {
	globalManager.assetCacheMisses.Inc()
}

// RecordAssetFetchLatency records loader fetch latency in milliseconds.
func RecordAssetFetchLatency(latencyMs float64) {
	globalManager.assetFetchLatency.Observe(latencyMs)
}

// RecordAssetFetchError records a loader fetch failure.
func RecordAssetFetchError() {
	globalManager.assetFetchErrors.Inc()
}

// UpdateAssetCacheSize updates the resident asset count gauge.
func UpdateAssetCacheSize(count int) {
	globalManager.assetCacheSize.Set(float64(count))
}

// RecordPrefetchWarmed records an asset warmed by the prefetch pool.
func RecordPrefetchWarmed() {
	globalManager.prefetchWarmed.Inc()
}

// RecordPrefetchFailed records a failed prefetch attempt.
func RecordPrefetchFailed() {
	globalManager.prefetchFailed.Inc()
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
