//go:build unit

package payment_test

import (
	"context"
	"testing"
	"time"

	"service-marketplace/internal/domain/money"
	domainpay "service-marketplace/internal/domain/payment"
	"service-marketplace/internal/infra/payment"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func mustCard(t *testing.T, number string) domainpay.Card {
	t.Helper()
	c, err := domainpay.NewCard(number, "Taro Yamada", 12, 2030, "123", fixedNow)
	require.NoError(t, err)
	return c
}

func TestSimulatedGateway_ProcessPayment(t *testing.T) {
	clk := clock.NewMockClock(fixedNow)
	amount := money.FromCents(5000)

	t.Run("Stripeの参照番号", func(t *testing.T) {
		ref, err := payment.NewStripeGateway(clk).ProcessPayment(context.Background(), amount, mustCard(t, "4242424242424242"), "booking")
		require.NoError(t, err)
		assert.Equal(t, "STRIPE_1791968400000_4242", ref)
	})

	t.Run("PayPalの参照番号", func(t *testing.T) {
		ref, err := payment.NewPayPalGateway(clk).ProcessPayment(context.Background(), amount, mustCard(t, "4242424242424242"), "booking")
		require.NoError(t, err)
		assert.Equal(t, "PAYPAL_1791968400000_4242", ref)
	})

	t.Run("ブロック済みカードは拒否", func(t *testing.T) {
		_, err := payment.NewStripeGateway(clk).ProcessPayment(context.Background(), amount, mustCard(t, "0000000000000000"), "booking")
		assert.ErrorIs(t, err, payment.ErrCardDeclined)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := payment.NewStripeGateway(clk).ProcessPayment(ctx, amount, mustCard(t, "4242424242424242"), "booking")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSimulatedGateway_RefundAndPayout(t *testing.T) {
	clk := clock.NewMockClock(fixedNow)
	g := payment.NewStripeGateway(clk)

	ref, err := g.ProcessRefund(context.Background(), "STRIPE_1_4242", money.FromCents(2500))
	require.NoError(t, err)
	assert.Equal(t, "STRIPE_REFUND_1791968400000", ref)

	_, err = g.ProcessRefund(context.Background(), "", money.FromCents(2500))
	assert.Error(t, err)

	ref, err = g.ProcessPayout(context.Background(), money.FromCents(5000), uuid.New(), "payout")
	require.NoError(t, err)
	assert.Equal(t, "STRIPE_PAYOUT_1791968400000", ref)
}

func TestRegistry(t *testing.T) {
	clk := clock.NewMockClock(fixedNow)

	t.Run("enabled methods only", func(t *testing.T) {
		r, err := payment.NewRegistry(config.PaymentConfig{Methods: []string{"stripe"}, PayoutMethod: "paypal"}, clk)
		require.NoError(t, err)

		g, err := r.Get(domainpay.MethodStripe)
		require.NoError(t, err)
		assert.Equal(t, domainpay.MethodStripe, g.Method())

		_, err = r.Get(domainpay.MethodPayPal)
		assert.ErrorIs(t, err, payment.ErrMethodDisabled)
		assert.True(t, errs.IsKind(err, errs.KindValidation))

		assert.Equal(t, domainpay.MethodPayPal, r.Payout().Method())
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := payment.NewRegistry(config.PaymentConfig{Methods: []string{"bitcoin"}, PayoutMethod: "stripe"}, clk)
		assert.ErrorIs(t, err, domainpay.ErrUnsupportedMethod)
	})
}
