package booking

import (
	"fmt"
	"strings"
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.NotFound("booking not found")
	ErrInvalidTransition  = errs.InvalidState("booking status does not allow this operation")
	ErrNotOwner           = errs.Forbidden("booking belongs to another customer")
	ErrReasonTooLong      = errs.Validation("cancellation reason is too long (max 500 characters)")
	ErrConcurrentlyChange = errs.Conflict("booking was modified concurrently")
)

const MaxReasonLength = 500

type Booking struct {
	id                 uuid.UUID
	customerID         uuid.UUID
	serviceID          uuid.UUID
	slotID             uuid.UUID
	totalPrice         money.Money
	status             Status
	cancellationReason *string
	bookingDate        time.Time
	cancelledAt        *time.Time
	completedAt        *time.Time
}

// New starts a booking in PENDING. It becomes CONFIRMED once payment succeeds.
func New(customerID, serviceID, slotID uuid.UUID, price money.Money, now time.Time) *Booking {
	return &Booking{
		id:          uuid.New(),
		customerID:  customerID,
		serviceID:   serviceID,
		slotID:      slotID,
		totalPrice:  price,
		status:      StatusPending,
		bookingDate: now,
	}
}

func Reconstruct(
	id, customerID, serviceID, slotID uuid.UUID,
	totalPrice money.Money,
	status Status,
	cancellationReason *string,
	bookingDate time.Time,
	cancelledAt, completedAt *time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		customerID:         customerID,
		serviceID:          serviceID,
		slotID:             slotID,
		totalPrice:         totalPrice,
		status:             status,
		cancellationReason: cancellationReason,
		bookingDate:        bookingDate,
		cancelledAt:        cancelledAt,
		completedAt:        completedAt,
	}
}

func (b *Booking) transition(to Status) error {
	if !CanTransition(b.status, to) {
		return errs.Wrap(ErrInvalidTransition, fmt.Sprintf("%s -> %s", b.status, to))
	}
	b.status = to
	return nil
}

func (b *Booking) Confirm() error {
	return b.transition(StatusConfirmed)
}

func (b *Booking) Cancel(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return ErrReasonTooLong
	}
	if err := b.transition(StatusCancelled); err != nil {
		return err
	}
	if reason != "" {
		b.cancellationReason = &reason
	}
	b.cancelledAt = &now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if err := b.transition(StatusCompleted); err != nil {
		return err
	}
	b.completedAt = &now
	return nil
}

func (b *Booking) MarkNoShow() error {
	return b.transition(StatusNoShow)
}

func (b *Booking) EnsureOwnedBy(customerID uuid.UUID) error {
	if b.customerID != customerID {
		return ErrNotOwner
	}
	return nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() uuid.UUID       { return b.customerID }
func (b *Booking) ServiceID() uuid.UUID        { return b.serviceID }
func (b *Booking) SlotID() uuid.UUID           { return b.slotID }
func (b *Booking) TotalPrice() money.Money     { return b.totalPrice }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) BookingDate() time.Time      { return b.bookingDate }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CompletedAt() *time.Time     { return b.completedAt }
