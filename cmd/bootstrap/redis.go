package bootstrap

import (
	"context"
	"log/slog"

	"service-marketplace/internal/infra/cache"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSlotCache,
	),
)

// NewSlotCache falls back to regenerating on every read when REDIS_ADDR is unset.
func NewSlotCache(lc fx.Lifecycle, cfg config.Config, sched shared.Scheduling, clk clock.Clock) (shared.SlotCache, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("redis disabled, slot generation cache is a no-op")
		return cache.NopSlotCache{}, nil
	}

	rdb, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return cache.NewRedisSlotCache(rdb, sched.Location, clk), nil
}
