package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking outcomes
const (
	OutcomeCommitted    = "committed"
	OutcomeConflict     = "conflict"
	OutcomeRejected     = "rejected"
	OutcomePeriodClosed = "period_closed"
	OutcomeError        = "error"
	OutcomeUnknown      = "unknown"
)

var (
	once sync.Once

	bookingAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arte",
			Name:      "booking_attempts_total",
			Help:      "Booking submissions by show and outcome.",
		},
		[]string{"show", "outcome"},
	)

	seatsBooked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arte",
			Name:      "seats_booked_total",
			Help:      "Seats reserved by committed bookings.",
		},
		[]string{"show"},
	)

	commitDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arte",
			Name:      "booking_commit_seconds",
			Help:      "Latency of the atomic reserve call.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"show"},
	)

	availabilityReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arte",
			Name:      "availability_reads_total",
			Help:      "Seat availability reads, split by degraded responses.",
		},
		[]string{"show", "degraded"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arte",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		},
		[]string{"route", "method", "status"},
	)
)

// Register registers the collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingAttempts, seatsBooked, commitDuration, availabilityReads, httpRequests)
	})
}

func IncBooking(show, outcome string) {
	bookingAttempts.WithLabelValues(show, outcome).Inc()
}

func AddSeatsBooked(show string, n int) {
	seatsBooked.WithLabelValues(show).Add(float64(n))
}

func ObserveCommit(show string, d time.Duration) {
	commitDuration.WithLabelValues(show).Observe(d.Seconds())
}

func IncAvailability(show string, degraded bool) {
	availabilityReads.WithLabelValues(show, strconv.FormatBool(degraded)).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware counts requests by chi route pattern so path parameters do not
// explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}
