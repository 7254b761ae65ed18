package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	before := testutil.ToFloat64(bookingAttempts.WithLabelValues("rent", OutcomeCommitted))
	IncBooking("rent", OutcomeCommitted)
	assert.Equal(t, before+1, testutil.ToFloat64(bookingAttempts.WithLabelValues("rent", OutcomeCommitted)))

	assert.NotPanics(t, func() {
		AddSeatsBooked("rent", 3)
		ObserveCommit("rent", 15*time.Millisecond)
		IncAvailability("rent", true)
	})
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	Register()

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/seats/{showId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	counter := httpRequests.WithLabelValues("/api/seats/{showId}", http.MethodGet, "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/seats/rent", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "arte_http_requests_total"))
}
