//go:build unit

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slotbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct{}

func (failingLimiter) Hit(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("redis: connection refused")
}

func limitedRouter(l Limiter, cfg config.RateLimitConfig, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings", NewRateLimiter(l, cfg).Limit("booking", limit), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMemoryLimiter(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		n, err := l.Hit(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	other, _ := l.Hit(ctx, "other", time.Minute)
	assert.Equal(t, int64(1), other, "keys are counted separately")

	now = now.Add(time.Minute)
	n, _ := l.Hit(ctx, "k", time.Minute)
	assert.Equal(t, int64(1), n, "window resets once it has elapsed")
}

func TestMemoryLimiterSweepsExpiredWindows(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_, err := l.Hit(ctx, fmt.Sprintf("rl:booking:10.0.%d.%d", i/256, i%256), time.Minute)
		require.NoError(t, err)
	}
	assert.Len(t, l.windows, 1000)

	now = now.Add(30 * time.Second)
	_, _ = l.Hit(ctx, "rl:booking:10.9.9.9", time.Minute)
	assert.Len(t, l.windows, 1001, "live windows are kept")

	now = now.Add(time.Hour)
	n, err := l.Hit(ctx, "rl:booking:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, l.windows, 1, "only the fresh window survives")
}

func TestRateLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{Window: time.Minute, KeyPrefix: "rl", FailOpen: true}

	t.Run("429 with Retry-After once the limit is exceeded", func(t *testing.T) {
		r := limitedRouter(NewMemoryLimiter(), cfg, 2)

		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1").Code)
		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1").Code)

		w := hit(r, "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))

		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.2").Code, "other clients are unaffected")
	})

	t.Run("zero limit disables the check", func(t *testing.T) {
		r := limitedRouter(failingLimiter{}, cfg, 0)
		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1").Code)
	})

	t.Run("limiter failure", func(t *testing.T) {
		open := limitedRouter(failingLimiter{}, cfg, 5)
		assert.Equal(t, http.StatusCreated, hit(open, "10.0.0.1").Code)

		closedCfg := cfg
		closedCfg.FailOpen = false
		closed := limitedRouter(failingLimiter{}, closedCfg, 5)
		assert.Equal(t, http.StatusServiceUnavailable, hit(closed, "10.0.0.1").Code)
	})
}
