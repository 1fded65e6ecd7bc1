package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewLimiter,
		NewRateLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, rate limit counters stay in process")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Limiter errors are handled per request according to RATE_LIMIT_FAIL_OPEN.
		logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewLimiter(rdb *redis.Client) middleware.Limiter {
	if rdb == nil {
		return middleware.NewMemoryLimiter()
	}
	return middleware.NewRedisLimiter(rdb)
}

func NewRateLimiter(limiter middleware.Limiter, cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(limiter, cfg.RateLimit)
}
