package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chronicle_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// StoreQueryLatency records document store query latency by operation and collection.
	StoreQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chronicle_store_query_latency_seconds",
		Help:    "Document store query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "collection"})

	// StoreErrors counts document store errors by operation and collection.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chronicle_store_errors_total",
		Help: "Total number of document store errors",
	}, []string{"operation", "collection"})
)

// StoreMetrics records query latency for a single collection.
type StoreMetrics struct {
	collection string
}

// NewStoreMetrics returns a StoreMetrics instance bound to a collection.
func NewStoreMetrics(collection string) *StoreMetrics {
	return &StoreMetrics{collection: collection}
}

// ObserveQuery records the latency of a store query.
func (m *StoreMetrics) ObserveQuery(operation string, start time.Time) {
	latency := time.Since(start).Seconds()
	StoreQueryLatency.WithLabelValues(operation, m.collection).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *StoreMetrics) TrackQuery(operation string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, start)
	}
}

// CountError increments the error counter for an operation.
func (m *StoreMetrics) CountError(operation string) {
	StoreErrors.WithLabelValues(operation, m.collection).Inc()
}
