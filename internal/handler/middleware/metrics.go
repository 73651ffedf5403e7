package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostel_http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostel_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	reservationsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostel_reservations_committed_total",
			Help: "Reservations successfully committed.",
		},
	)

	reservationsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hostel_reservations_cancelled_total",
			Help: "Reservations cancelled.",
		},
	)
)

// CountReservationCommitted and CountReservationCancelled are called by
// the reservation handlers on success.
func CountReservationCommitted() { reservationsCommitted.Inc() }
func CountReservationCancelled() { reservationsCancelled.Inc() }

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
