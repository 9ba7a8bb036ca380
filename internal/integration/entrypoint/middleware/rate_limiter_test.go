// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func newTestRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func doRequest(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 3, time.Minute)
		router := newTestRouter(rl)

		for i := 0; i < 3; i++ {
			if code := doRequest(router); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, code)
			}
		}
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 2, time.Minute)
		router := newTestRouter(rl)

		doRequest(router)
		doRequest(router)
		if code := doRequest(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		rl, mr := newTestLimiter(t, 1, time.Minute)
		router := newTestRouter(rl)

		doRequest(router)
		if code := doRequest(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 before expiry, got %d", code)
		}

		mr.FastForward(2 * time.Minute)

		if code := doRequest(router); code != http.StatusOK {
			t.Fatalf("expected 200 after expiry, got %d", code)
		}
	})

	t.Run("fails open when redis is down", func(t *testing.T) {
		rl, mr := newTestLimiter(t, 1, time.Minute)
		router := newTestRouter(rl)

		mr.Close()

		if code := doRequest(router); code != http.StatusOK {
			t.Fatalf("expected 200 with redis down, got %d", code)
		}
	})
}
