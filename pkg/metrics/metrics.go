package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency (seconds).
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"command"},
	)

	// Geocoding call latency (milliseconds).
	GeocodeCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geocode_call_latency_ms",
			Help:    "Geocoding API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"status"}, // status: ok, miss, error, open
	)

	// Guest import row counts.
	GuestImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guest_import_rows_total",
			Help: "Total number of guest import rows processed",
		},
		[]string{"result"}, // result: inserted, invalid, duplicate
	)

	// Milestone report computations.
	MilestoneComputeCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "milestone_compute_total",
			Help: "Total number of milestone reports computed",
		},
	)

	// MQ consume latency (milliseconds).
	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
		[]string{"routing_key", "queue"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(command string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(command).Observe(duration.Seconds())
}

func RecordGeocodeCallLatency(status string, duration time.Duration) {
	GeocodeCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

func IncrementGuestImportRows(result string, n int) {
	GuestImportRows.WithLabelValues(result).Add(float64(n))
}

func IncrementMilestoneCompute() {
	MilestoneComputeCount.Inc()
}

func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}
