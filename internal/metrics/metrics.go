package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shareit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "bookings_created_total",
			Help:      "Bookings created.",
		},
	)

	bookingsDecided = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "bookings_decided_total",
			Help:      "Booking decisions by outcome.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingsCreated, bookingsDecided)
	})
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, endpoint, status string, dur time.Duration) {
	httpRequests.WithLabelValues(method, endpoint, status).Inc()
	httpDuration.WithLabelValues(method, endpoint).Observe(dur.Seconds())
}

// IncBookingCreated increments the created bookings counter.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingDecided increments the decision counter for an outcome label.
func IncBookingDecided(status string) {
	bookingsDecided.WithLabelValues(status).Inc()
}
