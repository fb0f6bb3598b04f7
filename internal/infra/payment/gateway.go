package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCardDeclined = errs.New("card declined")

// SimulatedGateway stands in for a remote processor. References carry the
// processor prefix and the call time in milliseconds.
type SimulatedGateway struct {
	method payment.Method
	prefix string
	clock  clock.Clock
}

func NewStripeGateway(clk clock.Clock) *SimulatedGateway {
	return &SimulatedGateway{method: payment.MethodStripe, prefix: "STRIPE", clock: clk}
}

func NewPayPalGateway(clk clock.Clock) *SimulatedGateway {
	return &SimulatedGateway{method: payment.MethodPayPal, prefix: "PAYPAL", clock: clk}
}

func (g *SimulatedGateway) Method() payment.Method { return g.method }

func (g *SimulatedGateway) ProcessPayment(ctx context.Context, amount money.Money, card payment.Card, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, g.prefix+" payment aborted")
	}
	if card.IsBlocked() {
		slog.Warn("payment declined",
			slog.String("gateway", g.method.String()),
			slog.String("card", card.Masked()))
		return "", ErrCardDeclined
	}

	ref := fmt.Sprintf("%s_%d_%s", g.prefix, g.clock.Now().UnixMilli(), card.Last4())
	slog.Info("payment processed",
		slog.String("gateway", g.method.String()),
		slog.String("amount", amount.String()),
		slog.String("description", description),
		slog.String("reference", ref))
	return ref, nil
}

func (g *SimulatedGateway) ProcessRefund(ctx context.Context, originalRef string, amount money.Money) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, g.prefix+" refund aborted")
	}
	if strings.TrimSpace(originalRef) == "" {
		return "", errs.New("original payment reference is required")
	}

	ref := fmt.Sprintf("%s_REFUND_%d", g.prefix, g.clock.Now().UnixMilli())
	slog.Info("refund processed",
		slog.String("gateway", g.method.String()),
		slog.String("amount", amount.String()),
		slog.String("original", originalRef),
		slog.String("reference", ref))
	return ref, nil
}

func (g *SimulatedGateway) ProcessPayout(ctx context.Context, amount money.Money, recipient uuid.UUID, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, g.prefix+" payout aborted")
	}

	ref := fmt.Sprintf("%s_PAYOUT_%d", g.prefix, g.clock.Now().UnixMilli())
	slog.Info("payout processed",
		slog.String("gateway", g.method.String()),
		slog.String("amount", amount.String()),
		slog.String("recipient", recipient.String()),
		slog.String("description", description),
		slog.String("reference", ref))
	return ref, nil
}
