package bootstrap

import (
	"context"
	"log/slog"

	"lending-core/internal/infra/lease"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/config"
	"lending-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LeaseModule = fx.Module("lease",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker shares the sweep lease through Redis when REDIS_ADDR is set and
// falls back to an in-process lease otherwise.
func NewLocker(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) lease.Locker {
	if cfg.Redis.Addr == "" {
		logger.Info("sweep lease is process local", "reason", "REDIS_ADDR not set")
		return lease.NewLocalLocker(clk)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrapf(err, "ping redis at %s", cfg.Redis.Addr)
			}
			logger.Info("sweep lease shared through redis", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lease.NewRedisLocker(client)
}
