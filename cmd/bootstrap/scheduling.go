package bootstrap

import (
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulingModule = fx.Module("scheduling",
	fx.Provide(
		clock.NewRealClock,
		NewScheduling,
	),
)

func NewScheduling(cfg config.Config) (shared.Scheduling, error) {
	loc, err := cfg.Scheduling.Location()
	if err != nil {
		return shared.Scheduling{}, err
	}
	return shared.NewScheduling(loc, cfg.Scheduling.SlotHorizonDays, cfg.Payment.Timeout), nil
}
