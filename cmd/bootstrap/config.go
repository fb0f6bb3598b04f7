package bootstrap

import (
	"log/slog"

	"service-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary takes *slog.Logger so it runs after the logger module has
// installed the process logger.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"scheduling_timezone", cfg.Scheduling.TimeZone,
		"slot_horizon_days", cfg.Scheduling.SlotHorizonDays,
		"payment_methods", cfg.Payment.Methods,
		"slot_cache", cfg.Redis.Addr != "",
		"amqp_notifications", cfg.AMQP.URL != "",
	)
}
