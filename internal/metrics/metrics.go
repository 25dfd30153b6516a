package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for FrotaGest
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec
	DBConnections   prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	TireAssignmentsTotal  prometheus.CounterVec
	TireSwapsTotal        prometheus.Counter
	RecapCompletionsTotal prometheus.Counter
	TiresScrappedTotal    prometheus.Counter
	ExpiredStockTires     prometheus.Gauge
	ExpiryJobDuration     prometheus.Histogram
	EngineConflictsTotal  prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frotagest_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frotagest_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "frotagest_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frotagest_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frotagest_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),
		DBConnections: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "frotagest_db_connections",
				Help: "Current number of database connections",
			},
			[]string{"state"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frotagest_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frotagest_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		TireAssignmentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frotagest_tire_assignments_total",
				Help: "Total tire position assignments by outgoing disposition",
			},
			[]string{"disposition"},
		),
		TireSwapsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frotagest_tire_swaps_total",
				Help: "Total position swap operations",
			},
		),
		RecapCompletionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frotagest_recap_completions_total",
				Help: "Total tires returned from the recapper to stock",
			},
		),
		TiresScrappedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frotagest_tires_scrapped_total",
				Help: "Total tires moved to the scrapped status",
			},
		),
		ExpiredStockTires: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "frotagest_expired_stock_tires",
				Help: "Stock tires currently past their expiry date",
			},
		),
		ExpiryJobDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "frotagest_expiry_job_duration_seconds",
				Help:    "Tire expiry sweep execution time in seconds",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		EngineConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frotagest_engine_conflicts_total",
				Help: "Engine operations rejected by the optimistic version check",
			},
		),
	}
}
