package bootstrap

import (
	"context"

	"service-marketplace/internal/infra/db"
	"service-marketplace/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
	fx.Invoke(RegisterPoolMetrics),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func(context.Context) error {
		cleanup()
		return nil
	}))
	return pool, nil
}

func RegisterPoolMetrics(reg *prometheus.Registry, pool *pgxpool.Pool) error {
	return reg.Register(db.NewPoolCollector(pool))
}
