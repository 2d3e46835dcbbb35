package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var (
	metricsInstance *httpMetrics
	metricsOnce     sync.Once
	defaultRegistry prometheus.Registerer = prometheus.DefaultRegisterer
)

func getHTTPMetrics() *httpMetrics {
	metricsOnce.Do(func() {
		metricsInstance = &httpMetrics{
			requests: promauto.With(defaultRegistry).NewCounterVec(prometheus.CounterOpts{
				Name: "feedback_http_requests_total",
				Help: "Total number of HTTP requests",
			}, []string{"method", "path", "status"}),
			duration: promauto.With(defaultRegistry).NewHistogramVec(prometheus.HistogramOpts{
				Name:    "feedback_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "path"}),
		}
	})
	return metricsInstance
}

// resetMetricsForTesting swaps in a fresh registry and returns it.
func resetMetricsForTesting() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	defaultRegistry = reg
	metricsInstance = nil
	metricsOnce = sync.Once{}
	return reg
}

// Metrics records request counts and latency. The path label is the route
// template so ids in URLs do not explode cardinality.
func Metrics() gin.HandlerFunc {
	m := getHTTPMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		m.requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
