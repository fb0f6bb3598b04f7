package commands

import (
	"context"
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	kindCharge = "charge"
	kindRefund = "refund"
	kindPayout = "payout"
)

// payments wraps gateway calls with the configured timeout, metrics and the PaymentFailed kind.
type payments struct {
	gateways shared.PaymentGateways
	recorder shared.Recorder
	timeout  time.Duration
}

func newPayments(gateways shared.PaymentGateways, recorder shared.Recorder, sched shared.Scheduling) payments {
	return payments{gateways: gateways, recorder: recorder, timeout: sched.PaymentTimeout}
}

func (p payments) gateway(m payment.Method) (shared.PaymentGateway, error) {
	return p.gateways.Get(m)
}

func (p payments) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func (p payments) record(m payment.Method, kind string, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	p.recorder.Payment(m, kind, outcome)
}

func (p payments) charge(ctx context.Context, gw shared.PaymentGateway, amount money.Money, card payment.Card, description string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	ref, err := gw.ProcessPayment(ctx, amount, card, description)
	p.record(gw.Method(), kindCharge, err)
	if err != nil {
		return "", errs.PaymentFailed(err, "payment failed")
	}
	return ref, nil
}

func (p payments) refund(ctx context.Context, gw shared.PaymentGateway, originalRef string, amount money.Money) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	ref, err := gw.ProcessRefund(ctx, originalRef, amount)
	p.record(gw.Method(), kindRefund, err)
	if err != nil {
		return "", errs.PaymentFailed(err, "refund failed")
	}
	return ref, nil
}

func (p payments) payout(ctx context.Context, amount money.Money, recipient uuid.UUID, description string) (string, payment.Method, error) {
	gw := p.gateways.Payout()
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	ref, err := gw.ProcessPayout(ctx, amount, recipient, description)
	p.record(gw.Method(), kindPayout, err)
	if err != nil {
		return "", gw.Method(), errs.PaymentFailed(err, "payout failed")
	}
	return ref, gw.Method(), nil
}
