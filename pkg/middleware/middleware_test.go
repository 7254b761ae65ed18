package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arte-booking/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return s, client
}

func doRequest(h http.Handler, method, target, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = ip + ":40000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	_, client := newRedis(t)
	limiter := RateLimit(client, utils.RateLimitConfig{Requests: 2, Window: time.Hour}, "booking", zap.NewNop())
	h := limiter(okHandler)

	assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "/api/bookings/rent", "10.0.0.1").Code)
	rec := doRequest(h, http.MethodPost, "/api/bookings/rent", "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = doRequest(h, http.MethodPost, "/api/bookings/rent", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// budgets are per client
	assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "/api/bookings/rent", "10.0.0.2").Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	s, client := newRedis(t)
	s.SetError("LOADING redis is loading")

	limiter := RateLimit(client, utils.RateLimitConfig{Requests: 1, Window: time.Hour}, "booking", zap.NewNop())
	h := limiter(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "/api/bookings/rent", "10.0.0.1").Code)
	}
}

func TestRateLimitDisabledWithoutClient(t *testing.T) {
	h := RateLimit(nil, utils.RateLimitConfig{Requests: 1, Window: time.Hour}, "booking", zap.NewNop())(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "/", "10.0.0.1").Code)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetRequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	h := CORS("https://arte.example.com")(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings/rent", nil)
	req.Header.Set("Origin", "https://arte.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://arte.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/shows", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	CORS("*")(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
