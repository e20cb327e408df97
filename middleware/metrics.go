package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Core API Metrics
	CoreAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "core_api_request_duration_seconds",
			Help:    "Duration of brokered core API requests",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	CoreAPIFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "core_api_failures_total",
			Help: "Total number of failed core API requests",
		},
		[]string{"operation"},
	)

	// Import Metrics
	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imports_total",
			Help: "Total number of CSV import operations",
		},
		[]string{"kind", "operation"}, // stage, commit, discard, reject
	)

	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_total",
			Help: "Total number of parsed CSV rows by outcome",
		},
		[]string{"kind", "outcome"}, // valid/invalid
	)

	// Schedule Metrics
	ScheduleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_operations_total",
			Help: "Total number of schedule rule operations",
		},
		[]string{"operation"}, // preview, save, list
	)

	// Cache Metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_cache_lookups_total",
			Help: "Redis report cache lookups by result",
		},
		[]string{"result"}, // hit/miss/error
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type"}, // db, core_api, validation, etc.
	)
)

// MetricsMiddleware handles basic HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		ActiveRequests.Inc()
		defer ActiveRequests.Dec()

		c.Next()

		HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackCoreAPIRequest tracks a brokered core API call
func TrackCoreAPIRequest(operation string) *prometheus.Timer {
	return prometheus.NewTimer(CoreAPIRequestDuration.WithLabelValues(operation))
}

// TrackImportOperation increments the import operation counter
func TrackImportOperation(kind, operation string) {
	ImportsTotal.WithLabelValues(kind, operation).Inc()
}

// TrackImportRows records parsed row outcomes for one upload
func TrackImportRows(kind string, valid, invalid int) {
	ImportRowsTotal.WithLabelValues(kind, "valid").Add(float64(valid))
	ImportRowsTotal.WithLabelValues(kind, "invalid").Add(float64(invalid))
}

// TrackScheduleOperation increments the schedule rule operation counter
func TrackScheduleOperation(operation string) {
	ScheduleOperationsTotal.WithLabelValues(operation).Inc()
}

// TrackCacheLookup records a report cache hit, miss or error
func TrackCacheLookup(result string) {
	CacheLookups.WithLabelValues(result).Inc()
}

// TrackError increments the error counter by type
func TrackError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}
