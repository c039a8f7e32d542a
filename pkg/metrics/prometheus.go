// Package metrics provides Prometheus metrics for the trade analysis service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Core engine metrics
	analysesTotal     prometheus.Counter
	analysisDuration  prometheus.Histogram
	playersValued     prometheus.Counter
	valuationLatency  prometheus.Histogram
	partnerSearches   prometheus.Counter
	candidatesRaw     prometheus.Counter
	candidatesKept    prometheus.Counter
	candidatesDropped *prometheus.CounterVec
	duplicateTrades   prometheus.Counter
	suggestionsTotal  prometheus.Counter
	emptyResults      *prometheus.CounterVec

	// Operational health metrics
	queueSize     prometheus.Gauge
	queueCapacity prometheus.Gauge
	workerCount   prometheus.Gauge
	workerErrors  prometheus.Counter
	profileCount  prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemory     prometheus.Gauge
	systemGoroutines prometheus.Gauge
	systemGCPause    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Init initializes the global metrics manager.
func Init(opts ...Option) {
	m := &Manager{
		namespace:        "tradewinds",
		subsystem:        "engine",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.register()
	globalManager = m
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	if globalManager == nil {
		Init()
	}
	return globalManager.registry
}

func (m *Manager) register() {
	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
	}
	gaugeOpts := func(name, help string) prometheus.GaugeOpts {
		return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
	}
	histOpts := func(name, help string) prometheus.HistogramOpts {
		return prometheus.HistogramOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
			Buckets: m.histogramBuckets,
		}
	}

	m.analysesTotal = prometheus.NewCounter(factory("analyses_total", "Total analysis requests processed"))
	m.analysisDuration = prometheus.NewHistogram(histOpts("analysis_duration_ms", "End-to-end analysis duration in milliseconds"))
	m.playersValued = prometheus.NewCounter(factory("players_valued_total", "Total player valuations computed"))
	m.valuationLatency = prometheus.NewHistogram(histOpts("valuation_latency_ms", "Per-snapshot valuation pass duration in milliseconds"))
	m.partnerSearches = prometheus.NewCounter(factory("partner_searches_total", "Total per-partner candidate searches run"))
	m.candidatesRaw = prometheus.NewCounter(factory("candidates_generated_total", "Trade candidates produced by the generator"))
	m.candidatesKept = prometheus.NewCounter(factory("candidates_kept_total", "Trade candidates surviving the validation gate"))
	m.candidatesDropped = prometheus.NewCounterVec(factory("candidates_dropped_total", "Trade candidates discarded by the validation gate"), []string{"reason"})
	m.duplicateTrades = prometheus.NewCounter(factory("duplicate_trades_total", "Candidates removed by signature deduplication"))
	m.suggestionsTotal = prometheus.NewCounter(factory("suggestions_total", "Final ranked suggestions emitted"))
	m.emptyResults = prometheus.NewCounterVec(factory("empty_results_total", "Analyses that produced no suggestions"), []string{"reason"})

	m.queueSize = prometheus.NewGauge(gaugeOpts("queue_size", "Current partner-search queue depth"))
	m.queueCapacity = prometheus.NewGauge(gaugeOpts("queue_capacity", "Configured partner-search queue capacity"))
	m.workerCount = prometheus.NewGauge(gaugeOpts("worker_count", "Configured search worker count"))
	m.workerErrors = prometheus.NewCounter(factory("worker_errors_total", "Partner-search worker failures"))
	m.profileCount = prometheus.NewGauge(gaugeOpts("profiles_stored", "Team profiles held in the analysis store"))

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "requests_total", Help: "HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "request_duration_ms", Help: "HTTP request duration in milliseconds",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemory = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "system", Name: "memory_bytes", Help: "Current heap allocation in bytes",
	})
	m.systemGoroutines = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "system", Name: "goroutines", Help: "Current goroutine count",
	})
	m.systemGCPause = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "system", Name: "gc_pause_ms", Help: "Average GC pause time in milliseconds",
		Buckets: m.histogramBuckets,
	})

	m.registry.MustRegister(
		m.analysesTotal, m.analysisDuration, m.playersValued, m.valuationLatency,
		m.partnerSearches, m.candidatesRaw, m.candidatesKept, m.candidatesDropped,
		m.duplicateTrades, m.suggestionsTotal, m.emptyResults,
		m.queueSize, m.queueCapacity, m.workerCount, m.workerErrors, m.profileCount,
		m.httpRequests, m.httpRequestDuration,
		m.systemMemory, m.systemGoroutines, m.systemGCPause,
	)
}

func get() *Manager {
	if globalManager == nil {
		Init()
	}
	return globalManager
}

// RecordAnalysis increments the analysis counter and observes its duration.
func RecordAnalysis(durationMs float64) {
	m := get()
	if !m.enabled {
		return
	}
	m.analysesTotal.Inc()
	m.analysisDuration.Observe(durationMs)
}

// RecordPlayersValued adds to the valuation counter and observes pass latency.
func RecordPlayersValued(count int, durationMs float64) {
	m := get()
	if !m.enabled {
		return
	}
	m.playersValued.Add(float64(count))
	m.valuationLatency.Observe(durationMs)
}

// RecordPartnerSearch increments the per-partner search counter.
func RecordPartnerSearch() {
	if m := get(); m.enabled {
		m.partnerSearches.Inc()
	}
}

// RecordCandidatesGenerated adds raw generator output.
func RecordCandidatesGenerated(n int) {
	if m := get(); m.enabled {
		m.candidatesRaw.Add(float64(n))
	}
}

// RecordCandidateKept counts a candidate surviving the validation gate.
func RecordCandidateKept() {
	if m := get(); m.enabled {
		m.candidatesKept.Inc()
	}
}

// RecordCandidateDropped counts a gate discard by reason.
func RecordCandidateDropped(reason string) {
	if m := get(); m.enabled {
		m.candidatesDropped.WithLabelValues(reason).Inc()
	}
}

// RecordDuplicateTrade counts a candidate removed by signature dedup.
func RecordDuplicateTrade() {
	if m := get(); m.enabled {
		m.duplicateTrades.Inc()
	}
}

// RecordSuggestions adds final emitted suggestions.
func RecordSuggestions(n int) {
	if m := get(); m.enabled {
		m.suggestionsTotal.Add(float64(n))
	}
}

// RecordEmptyResult counts an analysis that produced no suggestions.
func RecordEmptyResult(reason string) {
	if m := get(); m.enabled {
		m.emptyResults.WithLabelValues(reason).Inc()
	}
}

// UpdateQueueSize sets the current queue depth gauge.
func UpdateQueueSize(n int) {
	if m := get(); m.enabled {
		m.queueSize.Set(float64(n))
	}
}

// UpdateQueueCapacity sets the configured queue capacity gauge.
func UpdateQueueCapacity(n int) {
	if m := get(); m.enabled {
		m.queueCapacity.Set(float64(n))
	}
}

// UpdateWorkerCount sets the worker count gauge.
func UpdateWorkerCount(n int) {
	if m := get(); m.enabled {
		m.workerCount.Set(float64(n))
	}
}

// RecordWorkerError counts a partner-search worker failure.
func RecordWorkerError() {
	if m := get(); m.enabled {
		m.workerErrors.Inc()
	}
}

// UpdateProfileCount sets the stored-profile gauge.
func UpdateProfileCount(n int) {
	if m := get(); m.enabled {
		m.profileCount.Set(float64(n))
	}
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if m := get(); m.enabled {
		m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if m := get(); m.enabled {
		m.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if m := get(); m.enabled {
		m.systemMemory.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	if m := get(); m.enabled {
		m.systemGoroutines.Set(float64(n))
	}
}

// RecordSystemGCPauseTime observes an average GC pause.
func RecordSystemGCPauseTime(ms float64) {
	if m := get(); m.enabled {
		m.systemGCPause.Observe(ms)
	}
}
