package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type routeHandler struct {
	method, path string
}

func (h routeHandler) Init(r chi.Router) {
	r.MethodFunc(h.method, h.path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	cfg.Auth.JWTSecret = testSecret
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000
	return cfg
}

func newTestApp(t *testing.T, pinger Pinger) *application {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(logger, testConfig(), prometheus.NewRegistry(), pinger)
	a.SetHTTPHandlers(routeHandler{http.MethodPost, "/webhooks/stripe"})
	a.SetProtectedHTTPHandlers(routeHandler{http.MethodPost, "/payment/premium-checkout"})
	a.mount()
	return a
}

func bearer(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp(t, pingerFunc(func(context.Context) error { return nil }))

	testCases := []struct {
		name       string
		method     string
		path       string
		auth       string
		wantStatus int
	}{
		{
			name:       "public webhook without token",
			method:     http.MethodPost,
			path:       "/api/webhooks/stripe",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "protected route without token",
			method:     http.MethodPost,
			path:       "/api/payment/premium-checkout",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "protected route with token",
			method:     http.MethodPost,
			path:       "/api/payment/premium-checkout",
			auth:       bearer(t, "c1"),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "metrics",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rec := httptest.NewRecorder()

			a.router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestApplication_HealthUnavailable(t *testing.T) {
	a := newTestApp(t, pingerFunc(func(context.Context) error { return errors.New("db down") }))

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

type blockingStarter struct {
	started chan struct{}
	stopped chan struct{}
}

func (s *blockingStarter) Start(ctx context.Context) error {
	close(s.started)
	<-ctx.Done()
	close(s.stopped)
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestApplication_StartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(logger, testConfig(), prometheus.NewRegistry(), pingerFunc(func(context.Context) error { return nil }))

	starter := &blockingStarter{started: make(chan struct{}), stopped: make(chan struct{})}
	closed := false
	a.SetStarters(starter)
	a.SetClosers(closerFunc(func() error {
		closed = true
		return nil
	}))

	require.NoError(t, a.Start(context.Background()))

	select {
	case <-starter.started:
	case <-time.After(time.Second):
		t.Fatal("starter was not started")
	}

	require.NoError(t, a.Stop())

	select {
	case <-starter.stopped:
	default:
		t.Fatal("starter was not stopped")
	}
	assert.True(t, closed)
}

func TestApplication_ForwardedForTrustedOnlyBehindProxy(t *testing.T) {
	testCases := []struct {
		name       string
		trustProxy bool
		wantSecond int
	}{
		{name: "direct clients share the connection address", wantSecond: http.StatusTooManyRequests},
		{name: "behind proxy each forwarded client is limited separately", trustProxy: true, wantSecond: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.RateLimit.RPS = 0.001
			cfg.RateLimit.Burst = 1
			cfg.Http.TrustProxy = tc.trustProxy

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			a := New(logger, cfg, prometheus.NewRegistry(), pingerFunc(func(context.Context) error { return nil }))
			a.SetHTTPHandlers(routeHandler{http.MethodPost, "/webhooks/stripe"})
			a.mount()

			do := func(forwardedFor string) int {
				req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", nil)
				req.RemoteAddr = "10.0.0.1:4000"
				req.Header.Set("X-Forwarded-For", forwardedFor)
				rec := httptest.NewRecorder()
				a.router.ServeHTTP(rec, req)
				return rec.Code
			}

			assert.Equal(t, http.StatusNoContent, do("203.0.113.1"))
			assert.Equal(t, tc.wantSecond, do("203.0.113.2"))
		})
	}
}
