package shared

import (
	"context"
	"time"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/domain/slot"

	"github.com/google/uuid"
)

type PaymentGateway interface {
	Method() payment.Method
	ProcessPayment(ctx context.Context, amount money.Money, card payment.Card, description string) (string, error)
	ProcessRefund(ctx context.Context, originalRef string, amount money.Money) (string, error)
	ProcessPayout(ctx context.Context, amount money.Money, recipient uuid.UUID, description string) (string, error)
}

// PaymentGateways resolves the enabled gateways. A disabled method is a validation error.
type PaymentGateways interface {
	Get(m payment.Method) (PaymentGateway, error)
	Payout() PaymentGateway
}

// Notifier never fails the caller; delivery errors are logged by the implementation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, msg notification.Message)
}

// SlotCache remembers which services already had slots generated today.
type SlotCache interface {
	Generated(ctx context.Context, serviceID uuid.UUID, today calendar.Date) bool
	MarkGenerated(ctx context.Context, serviceID uuid.UUID, today calendar.Date)
	Invalidate(ctx context.Context, serviceIDs ...uuid.UUID)
}

type Recorder interface {
	BookingOutcome(outcome string)
	Payment(method payment.Method, kind, outcome string)
	RefundDecision(decision string)
	SlotsGenerated(n int)
}

// Scheduling is the canonical calendar every use case agrees on.
type Scheduling struct {
	Location       *time.Location
	Generator      slot.Generator
	PaymentTimeout time.Duration
}

func NewScheduling(loc *time.Location, horizonDays int, paymentTimeout time.Duration) Scheduling {
	if loc == nil {
		loc = time.UTC
	}
	return Scheduling{
		Location:       loc,
		Generator:      slot.NewGenerator(horizonDays),
		PaymentTimeout: paymentTimeout,
	}
}

func (s Scheduling) Today(now time.Time) calendar.Date {
	return calendar.DateOf(now, s.Location)
}
