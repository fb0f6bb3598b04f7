package payment

import (
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/shared"
)

var ErrMethodDisabled = errs.Validation("payment method is not enabled")

type Registry struct {
	gateways map[payment.Method]shared.PaymentGateway
	payout   shared.PaymentGateway
}

func NewRegistry(cfg config.PaymentConfig, clk clock.Clock) (*Registry, error) {
	all := map[payment.Method]shared.PaymentGateway{
		payment.MethodStripe: NewStripeGateway(clk),
		payment.MethodPayPal: NewPayPalGateway(clk),
	}

	r := &Registry{gateways: make(map[payment.Method]shared.PaymentGateway, len(cfg.Methods))}
	for _, name := range cfg.Methods {
		m, err := payment.ParseMethod(name)
		if err != nil {
			return nil, errs.Wrapf(err, "payment method %q", name)
		}
		r.gateways[m] = all[m]
	}

	payoutMethod, err := payment.ParseMethod(cfg.PayoutMethod)
	if err != nil {
		return nil, errs.Wrapf(err, "payout method %q", cfg.PayoutMethod)
	}
	r.payout = all[payoutMethod]
	return r, nil
}

// NewRegistryWith builds a registry over the given gateways; the first one handles payouts.
func NewRegistryWith(gateways ...shared.PaymentGateway) *Registry {
	r := &Registry{gateways: make(map[payment.Method]shared.PaymentGateway, len(gateways))}
	for _, g := range gateways {
		r.gateways[g.Method()] = g
	}
	if len(gateways) > 0 {
		r.payout = gateways[0]
	}
	return r
}

func (r *Registry) Get(m payment.Method) (shared.PaymentGateway, error) {
	g, ok := r.gateways[m]
	if !ok {
		return nil, ErrMethodDisabled
	}
	return g, nil
}

func (r *Registry) Payout() shared.PaymentGateway {
	return r.payout
}

var _ shared.PaymentGateways = (*Registry)(nil)
