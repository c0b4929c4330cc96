package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func hit(handler http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_LimitsPerIP(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMinute: 2, RequestsPerMinuteAuth: 2}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)

	assert.Equal(t, http.StatusOK, hit(handler, "/", "192.168.1.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "/", "192.168.1.1:1000").Code)
	w := hit(handler, "/", "192.168.1.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, hit(handler, "/", "192.168.1.2:1000").Code)
}

func TestRateLimiter_Whitelists(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistIPs:      []string{"127.0.0.1"},
		WhitelistPaths:    []string{"/health", "/static/*"},
	}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/", "127.0.0.1:1").Code)
		assert.Equal(t, http.StatusOK, hit(handler, "/health", "10.0.0.1:1").Code)
		assert.Equal(t, http.StatusOK, hit(handler, "/static/site.css", "10.0.0.1:1").Code)
	}
	assert.Equal(t, http.StatusOK, hit(handler, "/staticky", "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "/staticky", "10.0.0.1:1").Code)
}

func TestRateLimiter_IgnoresForwardedHeaders(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
		WhitelistIPs:      []string{"127.0.0.1"},
	}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		req.Header.Set("X-Forwarded-For", "127.0.0.1")
		req.Header.Set("X-Real-IP", "127.0.0.1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429, 429}, codes)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1}, zap.NewNop())
	handler := rl.LimitByIP(okHandler)
	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/", "10.0.0.1:1").Code)
	}
}

func TestContactLimiter(t *testing.T) {
	cfg := &config.ContactRateLimitConfig{Enabled: true, Requests: 5, WindowMinutes: 10}
	handler := middleware.ContactLimiter(cfg, zap.NewNop(), nil)(okHandler)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/api/v1/contact", "203.0.113.5:4000").Code)
	}
	w := hit(handler, "/api/v1/contact", "203.0.113.5:4000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "600", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestContactLimiter_FormFallback(t *testing.T) {
	cfg := &config.ContactRateLimitConfig{Enabled: true, Requests: 1, WindowMinutes: 10}
	formLimited := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("<p>for mange</p>"))
	}
	handler := middleware.ContactLimiter(cfg, zap.NewNop(), formLimited)(okHandler)

	assert.Equal(t, http.StatusOK, hit(handler, "/contact", "203.0.113.5:4000").Code)
	w := hit(handler, "/contact", "203.0.113.5:4000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "600", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "for mange")

	w = hit(handler, "/api/v1/contact", "203.0.113.5:4000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestContactLimiter_Disabled(t *testing.T) {
	handler := middleware.ContactLimiter(&config.ContactRateLimitConfig{Enabled: false}, zap.NewNop(), nil)(okHandler)
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/api/v1/contact", "203.0.113.5:4000").Code)
	}
}
