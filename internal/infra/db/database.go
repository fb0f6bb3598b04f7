package db

import (
	"context"
	"log/slog"
	"time"

	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Connect opens a pool and verifies it with a ping. The returned cleanup
// closes the pool.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = min(2, cfg.MaxConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrapf(err, "open database %s@%s", cfg.DBName, cfg.Host)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrapf(err, "ping database %s@%s", cfg.DBName, cfg.Host)
	}

	slog.Info("database pool ready", "host", cfg.Host, "db", cfg.DBName, "max_conns", cfg.MaxConns)
	return pool, func() {
		slog.Info("closing database pool")
		pool.Close()
	}, nil
}
