// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caddie_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "caddie_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caddie_rate_limited_requests_total",
			Help: "Requests rejected by the inbound rate limiter",
		},
	)

	// Engine
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caddie_recommendations_total",
			Help: "Recommendations produced, by strategy and primary club",
		},
		[]string{"strategy", "club"},
	)

	RecommendationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caddie_recommendation_fallbacks_total",
			Help: "Recommendations where no club reached the target within dispersion",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "caddie_recommendation_duration_seconds",
			Help:    "Time spent in the recommendation engine",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	RecommendationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "caddie_recommendation_confidence",
			Help:    "Overall confidence of produced recommendations",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	// Cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caddie_cache_hits_total",
			Help: "Cache hits by key prefix",
		},
		[]string{"kind"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caddie_cache_misses_total",
			Help: "Cache misses by key prefix",
		},
		[]string{"kind"},
	)

	// Weather provider
	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caddie_weather_fetches_total",
			Help: "Upstream weather fetches by outcome",
		},
		[]string{"outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "caddie_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	WeatherRefreshRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caddie_weather_refresh_runs_total",
			Help: "Scheduled weather refresh runs by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordAPIRequest records one handled HTTP request
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecommendation records one engine run
func RecordRecommendation(strategy, club string, confidence float64, fallback bool, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(strategy, club).Inc()
	RecommendationConfidence.Observe(confidence)
	RecommendationDuration.Observe(duration.Seconds())
	if fallback {
		RecommendationFallbacks.Inc()
	}
}

// RecordCache records a cache lookup
func RecordCache(kind string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(kind).Inc()
		return
	}
	CacheMisses.WithLabelValues(kind).Inc()
}
