package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(NewScheduler),
	fx.Invoke(RegisterJobs),
)

const jobTimeout = 2 * time.Minute

func NewScheduler(lc fx.Lifecycle, logger *slog.Logger) *cron.Cron {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
				logger.Warn("scheduler stop timed out")
			}
			return nil
		},
	})
	return c
}

func RegisterJobs(c *cron.Cron, cfg config.Config, reviews commands.ReviewCommands, bookings commands.BookingCommands, logger *slog.Logger) error {
	if cfg.ReviewSweep.Enabled {
		batch := cfg.ReviewSweep.BatchSize
		if _, err := c.AddFunc(cfg.ReviewSweep.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			n, err := reviews.SendDueReviewRequests(ctx, batch)
			if err != nil {
				logger.Error("review sweep failed", "error", err)
				return
			}
			if n > 0 {
				logger.Info("review requests sent", "count", n)
			}
		}); err != nil {
			return err
		}
	}

	if cfg.Purge.Schedule != "" {
		if _, err := c.AddFunc(cfg.Purge.Schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			n, err := bookings.PurgeExpiredIdempotencyKeys(ctx)
			if err != nil {
				logger.Error("idempotency purge failed", "error", err)
				return
			}
			logger.Debug("idempotency keys purged", "count", n)
		}); err != nil {
			return err
		}
	}
	return nil
}
