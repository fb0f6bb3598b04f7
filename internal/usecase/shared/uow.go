package shared

import (
	"context"
	"time"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/domain/subscription"
	"service-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one READ COMMITTED transaction, retrying on serialization failures.
	// fn may run more than once, so side effects outside the Tx must be idempotent.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the current transaction.
type Tx interface {
	Users() UserRepository
	Services() ServiceRepository
	Availability() AvailabilityRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	Refunds() RefundRepository
	Ledger() LedgerRepository
	Plans() PlanRepository
	Subscriptions() SubscriptionRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	// LockByID takes a row lock held until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, u *user.User, from user.AccountStatus) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	Update(ctx context.Context, s *catalog.Service) error
	ListIDsByProvider(ctx context.Context, providerID uuid.UUID) ([]uuid.UUID, error)
}

type AvailabilityRepository interface {
	Create(ctx context.Context, a *availability.Availability) error
	FindByID(ctx context.Context, id uuid.UUID) (*availability.Availability, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*availability.Availability, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SlotRepository interface {
	// Insert reports false when a slot with the same key already exists.
	Insert(ctx context.Context, s *slot.Slot) (bool, error)
	// Occupied returns the spans of every slot dated in [from, to).
	Occupied(ctx context.Context, serviceID uuid.UUID, from, to calendar.Date) (slot.Occupied, error)
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	// UpdateStatus is a compare-and-set on from. A lost race is an infra CONFLICT.
	UpdateStatus(ctx context.Context, s *slot.Slot, from slot.Status) error
	DeleteUnbookedByProviderWeekday(ctx context.Context, providerID uuid.UUID, day calendar.Weekday) (int64, error)
	// DeleteAvailableFrom drops AVAILABLE slots dated on or after from that no booking references.
	DeleteAvailableFrom(ctx context.Context, serviceID uuid.UUID, from calendar.Date) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
}

type RefundRepository interface {
	Create(ctx context.Context, r *refund.Refund) error
	FindByID(ctx context.Context, id uuid.UUID) (*refund.Refund, error)
	Update(ctx context.Context, r *refund.Refund, from refund.Status) error
}

type LedgerRepository interface {
	Append(ctx context.Context, t *ledger.Transaction) error
	FindBookingPayment(ctx context.Context, bookingID uuid.UUID) (*ledger.Transaction, error)
}

type PlanRepository interface {
	Create(ctx context.Context, p *subscription.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*subscription.Plan, error)
	UpdateActive(ctx context.Context, p *subscription.Plan) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s *subscription.Subscription) error
	ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]*subscription.Subscription, error)
	Update(ctx context.Context, s *subscription.Subscription) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key is already taken for this user.
	TryInsert(ctx context.Context, rec IdempotencyRecord) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, rec IdempotencyRecord, now time.Time) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, userID uuid.UUID, msg notification.Message) error
	MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
