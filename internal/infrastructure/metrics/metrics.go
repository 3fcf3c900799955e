package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediavault",
			Subsystem: "catalog_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mediavault",
			Subsystem: "catalog_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Magnet links that failed parsing or pattern validation
	MalformedMagnetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediavault",
			Subsystem: "catalog_api",
			Name:      "malformed_magnets_total",
			Help:      "Total magnet links rejected by validation",
		},
		[]string{"reason"},
	)

	// SHA-256 hashes submitted in a non-canonical (non-lowercase) form
	NonCanonicalHashesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediavault",
			Subsystem: "catalog_api",
			Name:      "hash_noncanonical_total",
			Help:      "Total SHA-256 hashes canonicalized to lowercase on write",
		},
		[]string{"family"},
	)

	// Resilience fallbacks served as empty results
	ResilienceFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediavault",
			Subsystem: "catalog_api",
			Name:      "resilience_fallbacks_total",
			Help:      "Total operations degraded to an empty-result fallback",
		},
		[]string{"family", "operation", "cause"},
	)

	// Cache hit/miss counters for point lookups
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mediavault",
			Subsystem: "catalog_api",
			Name:      "cache_lookups_total",
			Help:      "Point-lookup cache hits and misses",
		},
		[]string{"family", "outcome"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordMalformedMagnet records a magnet link rejected by validation.
func RecordMalformedMagnet(reason string) {
	MalformedMagnetsTotal.WithLabelValues(reason).Inc()
}

// RecordNonCanonicalHash records a hash that needed lowercasing before persistence.
func RecordNonCanonicalHash(family string) {
	NonCanonicalHashesTotal.WithLabelValues(family).Inc()
}

// RecordFallback records an operation that degraded to empty results.
func RecordFallback(family, operation, cause string) {
	ResilienceFallbacksTotal.WithLabelValues(family, operation, cause).Inc()
}

// RecordCacheLookup records a point-lookup cache outcome ("hit" or "miss").
func RecordCacheLookup(family, outcome string) {
	CacheLookupsTotal.WithLabelValues(family, outcome).Inc()
}
