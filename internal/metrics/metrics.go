// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "dashboard"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts by outcome",
		},
		[]string{"kind", "outcome"},
	)

	// Requests whose token resolved to no user row
	CallerMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_caller_profile_missing_total",
			Help: "Total number of authenticated requests without a user record",
		},
	)

	// Activity log metrics
	ActivityWritesCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_activity_writes_total",
			Help: "Total number of activity log writes by outcome",
		},
		[]string{"outcome"},
	)

	// Summary metrics
	SummaryRequestsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_summary_requests_total",
			Help: "Total number of activity summary requests by outcome",
		},
		[]string{"outcome"},
	)

	SummaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_summary_duration_seconds",
			Help:    "Duration of text generation calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
	)

	// Project metrics
	ProjectOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_project_operations_total",
			Help: "Total number of project operations",
		},
		[]string{"operation"},
	)
)

// RecordAuth increments the authentication counter.
func RecordAuth(kind string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	AuthAttemptsCounter.WithLabelValues(kind, outcome).Inc()
}

// RecordActivityWrite increments the activity write counter.
func RecordActivityWrite(ok bool) {
	if ok {
		ActivityWritesCounter.WithLabelValues("success").Inc()
		return
	}
	ActivityWritesCounter.WithLabelValues("failure").Inc()
}

// TrackSummary returns a function that records the duration and outcome of
// one text generation call.
func TrackSummary() func(outcome string) {
	start := time.Now()
	return func(outcome string) {
		SummaryDuration.Observe(time.Since(start).Seconds())
		SummaryRequestsCounter.WithLabelValues(outcome).Inc()
	}
}

// RecordProjectOperation increments the counter for project operations.
func RecordProjectOperation(operation string) {
	ProjectOperationsCounter.WithLabelValues(operation).Inc()
}
