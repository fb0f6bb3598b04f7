//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/domain/user"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/infra/cache"
	"service-marketplace/internal/infra/metrics"
	"service-marketplace/internal/infra/notify"
	infrapay "service-marketplace/internal/infra/payment"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/shared"
	"service-marketplace/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	validCard    = "4242424242424242"
	declinedCard = "0000000000000000"
)

// Wednesday 09:00 UTC
var baseNow = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

type recordingGateway struct {
	*infrapay.SimulatedGateway

	mu      sync.Mutex
	charges []string
	refunds []string
	payouts []string
}

func (g *recordingGateway) ProcessPayment(ctx context.Context, amount money.Money, card payment.Card, description string) (string, error) {
	ref, err := g.SimulatedGateway.ProcessPayment(ctx, amount, card, description)
	if err == nil {
		g.mu.Lock()
		g.charges = append(g.charges, ref)
		g.mu.Unlock()
	}
	return ref, err
}

func (g *recordingGateway) ProcessRefund(ctx context.Context, originalRef string, amount money.Money) (string, error) {
	ref, err := g.SimulatedGateway.ProcessRefund(ctx, originalRef, amount)
	if err == nil {
		g.mu.Lock()
		g.refunds = append(g.refunds, originalRef)
		g.mu.Unlock()
	}
	return ref, err
}

func (g *recordingGateway) ProcessPayout(ctx context.Context, amount money.Money, recipient uuid.UUID, description string) (string, error) {
	ref, err := g.SimulatedGateway.ProcessPayout(ctx, amount, recipient, description)
	if err == nil {
		g.mu.Lock()
		g.payouts = append(g.payouts, ref)
		g.mu.Unlock()
	}
	return ref, err
}

func (g *recordingGateway) counts() (charges, refunds, payouts int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.charges), len(g.refunds), len(g.payouts)
}

type fixture struct {
	store    *memstore.Store
	clk      *clock.MockClock
	gw       *recordingGateway
	sched    shared.Scheduling
	customer *user.User
	provider *user.User
	service  *catalog.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := clock.NewMockClock(baseNow)
	f := &fixture{
		store: memstore.New(),
		clk:   clk,
		gw:    &recordingGateway{SimulatedGateway: infrapay.NewStripeGateway(clk)},
		sched: shared.NewScheduling(time.UTC, 30, 5*time.Second),
	}
	f.customer = f.putUser(t, "customer@example.com", user.RoleCustomer, user.StatusActive)
	f.provider = f.putUser(t, "provider@example.com", user.RoleServiceProvider, user.StatusActive)

	svc, err := catalog.NewService(f.provider.ID(), catalog.Attributes{
		Title:           "Haircut",
		Description:     "Wash and cut",
		Price:           money.FromCents(10000),
		DurationMinutes: 60,
		Type:            catalog.TypeInPerson,
	})
	require.NoError(t, err)
	f.store.PutService(svc)
	f.service = svc
	return f
}

func (f *fixture) putUser(t *testing.T, email string, role user.Role, status user.AccountStatus) *user.User {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	u := user.ReconstructUser(uuid.New(), e, "hash", "Test User", role, status, nil, baseNow, baseNow)
	f.store.PutUser(u)
	return u
}

// putSlot seeds an AVAILABLE slot starting at the given instant.
func (f *fixture) putSlot(t *testing.T, startsAt time.Time) *slot.Slot {
	t.Helper()
	start, err := calendar.NewTimeOfDay(startsAt.Hour(), startsAt.Minute())
	require.NoError(t, err)
	s := slot.Reconstruct(uuid.New(), f.service.ID(), calendar.DateOf(startsAt, time.UTC), start, start.Add(time.Hour), slot.StatusAvailable)
	f.store.PutSlot(s)
	return s
}

func (f *fixture) gateways() shared.PaymentGateways {
	return infrapay.NewRegistryWith(f.gw)
}

func (f *fixture) notifier() shared.Notifier {
	return notify.NewStoreNotifier(f.store)
}

func (f *fixture) bookings() commands.BookingCommands {
	return commands.NewBookingCommands(f.store, f.gateways(), f.notifier(), metrics.Nop{}, f.sched, f.clk)
}

func (f *fixture) refunds() commands.RefundCommands {
	return commands.NewRefundCommands(f.store, f.gateways(), f.notifier(), metrics.Nop{}, f.sched, f.clk)
}

func (f *fixture) subscriptions() commands.SubscriptionCommands {
	return commands.NewSubscriptionCommands(f.store, f.gateways(), f.notifier(), metrics.Nop{}, f.sched, f.clk)
}

func (f *fixture) slots() commands.SlotCommands {
	return commands.NewSlotCommands(f.store, cache.NopSlotCache{}, metrics.Nop{}, f.sched, f.clk)
}

func (f *fixture) catalog() commands.CatalogCommands {
	return commands.NewCatalogCommands(f.store, cache.NopSlotCache{}, f.slots(), f.sched, f.clk)
}

func (f *fixture) availability() commands.AvailabilityCommands {
	return commands.NewAvailabilityCommands(f.store, cache.NopSlotCache{}, f.slots())
}

func cardRequest(number string) reqdto.PaymentCardRequest {
	return reqdto.PaymentCardRequest{
		Number:   number,
		Holder:   "Hanako Suzuki",
		ExpMonth: 12,
		ExpYear:  2030,
		CVV:      "123",
	}
}

func (f *fixture) bookingRequest(slotID uuid.UUID, card string) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:     f.service.ID(),
		SlotID:        slotID,
		PaymentMethod: "credit_card",
		Card:          cardRequest(card),
	}
}

// book creates a confirmed booking on a fresh slot starting at startsAt.
func (f *fixture) book(t *testing.T, startsAt time.Time) (uuid.UUID, *slot.Slot) {
	t.Helper()
	s := f.putSlot(t, startsAt)
	res, err := f.bookings().Create(context.Background(), f.bookingRequest(s.ID(), validCard), f.customer.ID(), nil)
	require.NoError(t, err)
	return res.BookingID, s
}
