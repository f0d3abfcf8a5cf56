package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mangastore/internal/httpx"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware(t *testing.T) {
	middleware := httpx.CORSMiddleware([]string{"http://localhost:3000"})

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/catalogue", nil)
		r.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/catalogue", nil)
		r.Header.Set("Origin", "http://evil.example")

		w := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(w, r)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/cart/items", nil)
		r.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.SecurityHeadersMiddleware(okHandler()).ServeHTTP(w,
		httptest.NewRequest(http.MethodGet, "/catalogue", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	middleware := httpx.RequestSizeLimitMiddleware(64)

	t.Run("small body passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("small"))

		w := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(strings.Repeat("x", 128)))

		w := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(w, r)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
