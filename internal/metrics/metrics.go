// Package metrics содержит коллекторы Prometheus для HTTP-запросов,
// шаблонов SQL-запросов и кеша результатов.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapstl_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mapstl_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mapstl_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mapstl_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// База данных
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mapstl_db_query_duration_seconds",
			Help:    "Duration of SQL template executions in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"template"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapstl_db_query_errors_total",
			Help: "Total number of failed SQL template executions",
		},
		[]string{"template"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mapstl_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Кеш
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapstl_cache_hits_total",
			Help: "Total number of result cache hits",
		},
		[]string{"operation"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapstl_cache_misses_total",
			Help: "Total number of result cache misses",
		},
		[]string{"operation"},
	)
)

// RecordDBQuery записывает длительность выполнения шаблона и ошибку, если она есть
func RecordDBQuery(template string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(template).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(template).Inc()
	}
}

// RecordHTTPRequest записывает результат HTTP-запроса
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCache учитывает попадание или промах кеша
func RecordCache(operation string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(operation).Inc()
		return
	}
	CacheMisses.WithLabelValues(operation).Inc()
}
