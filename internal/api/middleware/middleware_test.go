package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/adapters/cache"
	"github.com/zatekoja/nursecare/backend/internal/api/middleware"
	"github.com/zatekoja/nursecare/backend/pkg/config"
)

func countingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		allowed      []string
		origin       string
		method       string
		expectOrigin string
		expectVary   bool
		expectCalled bool
	}{
		{name: "wildcard", allowed: nil, origin: "http://localhost:5173", method: http.MethodGet, expectOrigin: "*", expectCalled: true},
		{name: "listed origin", allowed: []string{"https://nurse.example"}, origin: "https://nurse.example", method: http.MethodGet, expectOrigin: "https://nurse.example", expectVary: true, expectCalled: true},
		{name: "unlisted origin", allowed: []string{"https://nurse.example"}, origin: "https://evil.example", method: http.MethodGet, expectCalled: true},
		{name: "preflight", allowed: nil, origin: "http://localhost:5173", method: http.MethodOptions, expectOrigin: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			handler := middleware.CORSMiddleware(tt.allowed)(countingHandler(&calls))

			req := httptest.NewRequest(tt.method, "/api/categories", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectVary, w.Header().Get("Vary") == "Origin")
			assert.Equal(t, tt.expectCalled, calls == 1)
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		})
	}
}

func TestRateLimiter(t *testing.T) {
	calls := 0
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}, nil)
	handler := limiter.Middleware(countingHandler(&calls))

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, post("203.0.113.7").Code)
	assert.Equal(t, http.StatusOK, post("203.0.113.7").Code)

	w := post("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded, try again later"}`, w.Body.String())

	// Other clients have their own budget
	assert.Equal(t, http.StatusOK, post("198.51.100.2").Code)

	// Reads are never limited
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 8, calls)

	assert.Equal(t, 0, limiter.Prune())
}

func TestRateLimiter_Disabled(t *testing.T) {
	calls := 0
	handler := middleware.NewRateLimiter(config.RateLimitConfig{}, nil).Middleware(countingHandler(&calls))

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 20, calls)
}

func TestCacheMiddleware(t *testing.T) {
	calls := 0
	cacheMiddleware := middleware.NewCacheMiddleware(cache.NewMemoryAdapter(), nil)
	handler := cacheMiddleware.Middleware(countingHandler(&calls))

	serve := func(method, target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(method, target, nil))
		return w
	}

	w := serve(http.MethodGet, "/api/categories")
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	w = serve(http.MethodGet, "/api/categories")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 1, calls)

	// Dynamic routes match by prefix and are keyed by path
	assert.Equal(t, "MISS", serve(http.MethodGet, "/api/categories/home-care").Header().Get("X-Cache"))
	assert.Equal(t, "MISS", serve(http.MethodGet, "/api/categories/wound-care").Header().Get("X-Cache"))
	assert.Equal(t, "HIT", serve(http.MethodGet, "/api/categories/home-care").Header().Get("X-Cache"))
	assert.Equal(t, 3, calls)

	// Query strings are part of the key
	assert.Equal(t, "MISS", serve(http.MethodGet, "/api/translations?lang=bn").Header().Get("X-Cache"))
	assert.Equal(t, "MISS", serve(http.MethodGet, "/api/translations?lang=en").Header().Get("X-Cache"))
	assert.Equal(t, 5, calls)

	// Writes and session routes pass through untouched
	assert.Empty(t, serve(http.MethodPost, "/api/categories").Header().Get("X-Cache"))
	assert.Empty(t, serve(http.MethodGet, "/api/sessions/abc").Header().Get("X-Cache"))
	assert.Equal(t, 7, calls)
}

func TestCacheMiddleware_SkipsErrors(t *testing.T) {
	calls := 0
	handler := middleware.NewCacheMiddlewareWithConfig(cache.NewMemoryAdapter(), nil, map[string]middleware.CacheConfig{
		"/api/nurses": {TTL: time.Minute, Enabled: true},
	}).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
	}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nurses", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, calls)
}

func TestObservabilityAndLogging_PassThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(r.PathValue("id")))
	})
	handler := middleware.ObservabilityMiddleware(nil)(middleware.LoggingMiddleware(mux))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/BK123456", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "BK123456", w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
