// Package metrics holds the prometheus collectors shared by the store, the
// workspace and the HTTP layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetcheck_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fleetcheck_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	storeWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetcheck_store_write_failures_total",
		Help: "Writes to the local store that failed and were dropped",
	}, []string{"key"})

	storeReadFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetcheck_store_read_fallbacks_total",
		Help: "Reads that returned the fallback value, by reason",
	}, []string{"key", "reason"})

	checksSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetcheck_checks_saved_total",
		Help: "Checks committed from a draft",
	})

	imports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetcheck_imports_total",
		Help: "Import attempts by envelope kind and result",
	}, []string{"kind", "result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// StoreWriteFailed counts a dropped store write
func StoreWriteFailed(key string) {
	storeWriteFailures.WithLabelValues(key).Inc()
}

// StoreReadFallback counts a read that fell back, reason is missing, read or parse
func StoreReadFallback(key, reason string) {
	storeReadFallbacks.WithLabelValues(key, reason).Inc()
}

// CheckSaved counts a committed check
func CheckSaved() {
	checksSaved.Inc()
}

// ImportAttempt counts an import, kind is empty when the file could not be classified
func ImportAttempt(kind, result string) {
	if kind == "" {
		kind = "unknown"
	}
	imports.WithLabelValues(kind, result).Inc()
}
