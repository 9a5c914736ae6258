package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Opsdeck
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	TimelineBuildsTotal    prometheus.Counter
	TimelineBuildDuration  prometheus.Histogram
	RoutesScheduled        prometheus.Gauge
	AircraftActive         prometheus.Gauge
	StatusTransitionsTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdeck_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opsdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opsdeck_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdeck_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdeck_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		TimelineBuildsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "opsdeck_timeline_builds_total",
				Help: "Total timeline documents computed",
			},
		),
		TimelineBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "opsdeck_timeline_build_duration_seconds",
				Help:    "Timeline document computation time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		RoutesScheduled: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "opsdeck_routes_scheduled",
				Help: "Current number of flight routes in scheduled state",
			},
		),
		AircraftActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "opsdeck_aircraft_active",
				Help: "Current number of active aircraft in the fleet",
			},
		),
		StatusTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdeck_route_status_transitions_total",
				Help: "Total route status transitions applied by the roll job",
			},
			[]string{"job_name"},
		),
	}
}
