package bootstrap

import (
	"service-marketplace/internal/infra/payment"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateways,
			fx.As(new(shared.PaymentGateways)),
		),
	),
)

func NewPaymentGateways(cfg config.Config, clk clock.Clock) (*payment.Registry, error) {
	return payment.NewRegistry(cfg.Payment, clk)
}
