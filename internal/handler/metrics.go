package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "knet_checkout"

var (
	feedProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog_feed",
			Name:      "messages_processed_total",
			Help:      "Total number of successfully imported catalog feed messages",
		},
	)

	feedFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog_feed",
			Name:      "messages_failed_total",
			Help:      "Total number of catalog feed messages that could not be imported",
		},
	)

	feedDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog_feed",
			Name:      "messages_dlq_total",
			Help:      "Total number of catalog feed messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog_feed",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	feedProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog_feed",
			Name:      "message_processing_duration_seconds",
			Help:      "Histogram of catalog feed message processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	feedInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog_feed",
			Name:      "messages_in_progress",
			Help:      "Number of catalog feed messages currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order lookups",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order lookup durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress order lookups",
		},
	)
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "submissions_total",
			Help:      "Checkout submissions by result",
		},
		[]string{"result"},
	)

	paymentReturnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "knet_returns_total",
			Help:      "KNET returns by outcome",
		},
		[]string{"result"},
	)

	catalogImportedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "phones_imported_total",
			Help:      "Phones imported by source",
		},
		[]string{"source"},
	)

	catalogRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "records_rejected_total",
			Help:      "Catalog records rejected by source",
		},
		[]string{"source"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		feedProcessed,
		feedFailed,
		feedDLQ,
		commitErrors,
		feedProcessingDuration,
		feedInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,

		checkoutsTotal,
		paymentReturnsTotal,
		catalogImportedTotal,
		catalogRejectedTotal,
	)
}
