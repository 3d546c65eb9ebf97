// Package metrics declares the Prometheus collectors for the signup service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total number of accepted signups per activity",
		},
		[]string{"activity"},
	)

	Unregistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Total number of accepted unregistrations per activity",
		},
		[]string{"activity"},
	)

	// RequestErrors is labelled by operation (signup, unregister) and a short reason.
	RequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_request_errors_total",
			Help: "Total number of rejected signup and unregister requests",
		},
		[]string{"operation", "reason"},
	)

	JournalFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activity_journal_failures_total",
			Help: "Total number of registration events that could not be journaled",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "activity_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
