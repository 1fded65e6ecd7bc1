package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, err error)
}

// RedisLimiter shares counters between instances.
type RedisLimiter struct {
	rdb *redis.Client
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRedisLimiter(rdb *redis.Client) *RedisLimiter {
	return &RedisLimiter{rdb: rdb}
}

func (l *RedisLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// MemoryLimiter is used when no Redis is configured. Counters are per process;
// expired windows are swept at most once per window length.
type MemoryLimiter struct {
	mu        sync.Mutex
	now       func() time.Time
	windows   map[string]*memoryWindow
	nextSweep time.Time
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{now: time.Now, windows: map[string]*memoryWindow{}}
}

func (l *MemoryLimiter) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !now.Before(l.nextSweep) {
		for k, w := range l.windows {
			if !now.Before(w.resetAt) {
				delete(l.windows, k)
			}
		}
		l.nextSweep = now.Add(window)
	}

	w := l.windows[key]
	if w == nil || !now.Before(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		l.windows[key] = w
	}
	w.count++
	return w.count, nil
}

type RateLimiter struct {
	limiter Limiter
	cfg     config.RateLimitConfig
}

func NewRateLimiter(limiter Limiter, cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{limiter: limiter, cfg: cfg}
}

// Limit allows limit requests per client IP and scope in each window.
func (rl *RateLimiter) Limit(scope string, limit int) gin.HandlerFunc {
	window := rl.cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		key := strings.Join([]string{rl.cfg.KeyPrefix, scope, c.ClientIP()}, ":")
		count, err := rl.limiter.Hit(c.Request.Context(), key, window)
		if err != nil {
			slog.Warn("rate limiter error", "scope", scope, "error", err)
			if rl.cfg.FailOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Rate limiter unavailable", nil)
			return
		}

		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
