// Package metrics holds the Prometheus collectors of the application.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ledger operation outcomes.
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultInsufficient = "insufficient_funds"
	ResultInvalid      = "invalid"
	ResultDuplicate    = "duplicate"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "superapp",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "superapp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "superapp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method", "path"},
	)

	ledgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "superapp",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Total number of ledger operations by outcome.",
		},
		[]string{"operation", "result"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ledgerOperations,
	)
}

// Handler exposes the registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge and returns a func that records
// the finished request.
func RequestStarted() func(method, path string, status int) {
	start := time.Now()
	httpInFlight.Inc()

	return func(method, path string, status int) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordLedgerOperation counts a ledger operation with its outcome.
func RecordLedgerOperation(operation, result string) {
	ledgerOperations.WithLabelValues(operation, result).Inc()
}
