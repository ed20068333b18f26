// Package metrics provides Prometheus metrics collection for the quote service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuoteCalculationsTotal tracks quote calculations by container type and outcome.
	QuoteCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_calculations_total",
			Help: "Total number of container quote calculations",
		},
		[]string{"container_type", "status"},
	)

	// QuoteCalculationDuration tracks quote calculation duration.
	QuoteCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_calculation_duration_seconds",
			Help:    "Quote calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// QuoteLinesTotal tracks the number of priced product lines per quote.
	QuoteLinesTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_lines",
			Help:    "Number of active product lines per quote",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// ScenarioOperationsTotal tracks scenario store operations.
	ScenarioOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_operations_total",
			Help: "Total number of scenario store operations",
		},
		[]string{"operation", "result"},
	)

	// CatalogLoadsTotal tracks where served catalogs came from.
	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog loads by source",
		},
		[]string{"source"},
	)

	// CircuitBreakerState tracks the state of each circuit breaker (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuoteCalculation records metrics for a quote calculation.
func RecordQuoteCalculation(containerType string, lines int, duration time.Duration, status string) {
	QuoteCalculationDuration.Observe(duration.Seconds())
	QuoteCalculationsTotal.WithLabelValues(containerType, status).Inc()
	if status == "success" {
		QuoteLinesTotal.Observe(float64(lines))
	}
}

// RecordScenarioOperation records metrics for a scenario store operation.
func RecordScenarioOperation(operation, result string) {
	ScenarioOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordCatalogLoad records where a served catalog came from ("store", "default", "cache").
func RecordCatalogLoad(source string) {
	CatalogLoadsTotal.WithLabelValues(source).Inc()
}

// SetCircuitBreakerState records the current state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
