// Package metrics provides Prometheus metrics for vaultsearch
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for vaultsearch.
// Each value owns its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Search metrics
	SearchQueriesTotal prometheus.Counter
	SearchResultsTotal prometheus.Counter

	// Index metrics
	VaultSelectionsTotal *prometheus.CounterVec
	CrawlDuration        prometheus.Histogram
	IndexedDocuments     prometheus.Gauge
	ReadFailures         prometheus.Gauge
}

// New creates and registers all metrics on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaultsearch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vaultsearch_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	m.HTTPRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "vaultsearch_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	m.SearchQueriesTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "vaultsearch_search_queries_total",
			Help: "Total number of search queries",
		},
	)

	m.SearchResultsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "vaultsearch_search_results_total",
			Help: "Total number of search results returned",
		},
	)

	m.VaultSelectionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaultsearch_vault_selections_total",
			Help: "Total number of vault selections by outcome",
		},
		[]string{"status"},
	)

	m.CrawlDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vaultsearch_crawl_duration_seconds",
			Help:    "Duration of vault crawls in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	m.IndexedDocuments = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "vaultsearch_indexed_documents",
			Help: "Number of documents in the current index",
		},
	)

	m.ReadFailures = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "vaultsearch_read_failures",
			Help: "Notes that could not be read during the last crawl",
		},
	)

	return m
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordSearch records one search and its result count
func (m *Metrics) RecordSearch(results int) {
	m.SearchQueriesTotal.Inc()
	m.SearchResultsTotal.Add(float64(results))
}

// RecordVaultSelection records a successful crawl and the resulting index size
func (m *Metrics) RecordVaultSelection(documents, failures int, duration time.Duration) {
	m.VaultSelectionsTotal.WithLabelValues("success").Inc()
	m.CrawlDuration.Observe(duration.Seconds())
	m.IndexedDocuments.Set(float64(documents))
	m.ReadFailures.Set(float64(failures))
}

// RecordVaultSelectionError records a rejected or failed vault selection
func (m *Metrics) RecordVaultSelectionError() {
	m.VaultSelectionsTotal.WithLabelValues("error").Inc()
}
