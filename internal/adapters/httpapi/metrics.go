package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iris_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "iris_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	computationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iris_computations_total",
			Help: "Distance computations by body and outcome.",
		},
		[]string{"body", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(computationsTotal)
}

// CacheStats is implemented by resolvers that memoise positions.
type CacheStats interface {
	Stats() (hits, misses int64)
}

// RegisterCacheMetrics exposes the hit and miss counters of a position cache.
// Call it at most once per process.
func RegisterCacheMetrics(c CacheStats) {
	prometheus.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "iris_position_cache_hits_total",
			Help: "Position lookups served from the cache.",
		}, func() float64 {
			hits, _ := c.Stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "iris_position_cache_misses_total",
			Help: "Position lookups that reached the resolver.",
		}, func() float64 {
			_, misses := c.Stats()
			return float64(misses)
		}),
	)
}

// MetricsHandler returns the Prometheus metrics HTTP handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// normalizeRoute maps a request path to a bounded label set.
func normalizeRoute(path string) string {
	switch path {
	case "/healthz", "/metrics", "/api/v1/bodies", "/api/v1/distance", "/api/v1/history":
		return path
	default:
		return "other"
	}
}

// metricsMiddleware records request count and duration for each request.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := recordStatus(w)

		next.ServeHTTP(rw, r)

		route := normalizeRoute(r.URL.Path)
		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.statusCode)).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
