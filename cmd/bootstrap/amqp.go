package bootstrap

import (
	"context"
	"log/slog"

	"service-marketplace/internal/infra/notify"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier always stores in-app notifications and additionally publishes
// to the broker when AMQP_URL is set.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) (shared.Notifier, error) {
	store := notify.NewStoreNotifier(uow)
	if cfg.AMQP.URL == "" {
		return notify.NewComposite(store), nil
	}

	conn, err := notify.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	slog.Info("publishing notifications", "exchange", cfg.AMQP.Exchange)

	return notify.NewComposite(store, notify.NewAMQPNotifier(conn.Channel(), cfg.AMQP.Exchange, clk)), nil
}
