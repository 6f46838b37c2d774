package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics holds every metric the platform emits.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Analysis pipeline
	AnalysesTotal      CounterVec
	AnalysisDuration   HistogramVec
	ClausesPerDocument HistogramVec
	ClausesByRisk      CounterVec

	// Assessment cache
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec

	// Infrastructure
	DBQueryDuration   HistogramVec
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

var (
	// DefaultHTTPDurationBuckets covers request latencies from sub-10ms
	// cache hits to multi-second full-document analyses.
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	DefaultDBDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}

	// DefaultClauseCountBuckets spans single-clause submissions to long
	// agreements.
	DefaultClauseCountBuckets = []float64{1, 2, 5, 10, 20, 50, 100, 200}
)

// NewAppMetrics registers all platform metrics on the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "In-flight HTTP requests", "method")

	m.AnalysesTotal = collector.RegisterCounter("analyses_total", "Document analyses performed", "contract_type", "status")
	m.AnalysisDuration = collector.RegisterHistogram("analysis_duration_seconds", "Full-document analysis duration", DefaultHTTPDurationBuckets, "contract_type")
	m.ClausesPerDocument = collector.RegisterHistogram("clauses_per_document", "Clauses extracted per document", DefaultClauseCountBuckets)
	m.ClausesByRisk = collector.RegisterCounter("clauses_by_risk_total", "Enriched clauses by risk tier", "risk_level")

	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")

	m.DBQueryDuration = collector.RegisterHistogram("db_query_duration_seconds", "Database query duration", DefaultDBDurationBuckets, "operation")
	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Health check status (1=up, 0=down)", "component")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Total errors", "component", "error_type")

	return m
}

// RecordHTTPRequest increments the request counter and observes latency.
func RecordHTTPRequest(m *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAnalysis captures one completed (or failed) document analysis.
func RecordAnalysis(m *AppMetrics, contractType string, success bool, clauses, high, medium, low int, duration time.Duration) {
	if m == nil {
		return
	}
	if contractType == "" {
		contractType = "unspecified"
	}
	status := "success"
	if !success {
		status = "failure"
	}
	m.AnalysesTotal.WithLabelValues(contractType, status).Inc()
	if !success {
		return
	}
	m.AnalysisDuration.WithLabelValues(contractType).Observe(duration.Seconds())
	m.ClausesPerDocument.WithLabelValues().Observe(float64(clauses))
	m.ClausesByRisk.WithLabelValues("High").Add(float64(high))
	m.ClausesByRisk.WithLabelValues("Medium").Add(float64(medium))
	m.ClausesByRisk.WithLabelValues("Low").Add(float64(low))
}

// RecordCacheAccess counts one cache lookup outcome.
func RecordCacheAccess(m *AppMetrics, cache string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.WithLabelValues(cache).Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues(cache).Inc()
	}
}

// RecordError counts one component error.
func RecordError(m *AppMetrics, component, errorType string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
