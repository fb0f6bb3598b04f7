package refund

import (
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRefundNotFound = errs.NotFound("refund not found")
	ErrNotPending     = errs.InvalidState("refund is not pending")
	ErrNotApproved    = errs.InvalidState("refund is not approved")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string { return string(s) }

type Refund struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	amount        money.Money
	reason        string
	status        Status
	adminNotes    *string
	transactionID *uuid.UUID
	requestedAt   time.Time
	processedAt   *time.Time
}

func New(bookingID uuid.UUID, d Decision, reason string, now time.Time) *Refund {
	r := &Refund{
		id:          uuid.New(),
		bookingID:   bookingID,
		amount:      d.Amount,
		reason:      reason,
		status:      d.Status,
		requestedAt: now,
	}
	if d.AutoFinalize {
		r.setNotes(AutoApprovalNote)
	}
	return r
}

func Reconstruct(
	id, bookingID uuid.UUID,
	amount money.Money,
	reason string,
	status Status,
	adminNotes *string,
	transactionID *uuid.UUID,
	requestedAt time.Time,
	processedAt *time.Time,
) *Refund {
	return &Refund{
		id:            id,
		bookingID:     bookingID,
		amount:        amount,
		reason:        reason,
		status:        status,
		adminNotes:    adminNotes,
		transactionID: transactionID,
		requestedAt:   requestedAt,
		processedAt:   processedAt,
	}
}

func (r *Refund) Approve(notes string) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusApproved
	r.setNotes(notes)
	return nil
}

func (r *Refund) Reject(notes string, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	r.setNotes(notes)
	r.processedAt = &now
	return nil
}

// Complete links the REFUND ledger row and finalizes the refund.
func (r *Refund) Complete(transactionID uuid.UUID, now time.Time) error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	r.status = StatusCompleted
	r.transactionID = &transactionID
	r.processedAt = &now
	return nil
}

func (r *Refund) setNotes(notes string) {
	if notes == "" {
		return
	}
	r.adminNotes = &notes
}

func (r *Refund) ID() uuid.UUID             { return r.id }
func (r *Refund) BookingID() uuid.UUID      { return r.bookingID }
func (r *Refund) Amount() money.Money       { return r.amount }
func (r *Refund) Reason() string            { return r.reason }
func (r *Refund) Status() Status            { return r.status }
func (r *Refund) AdminNotes() *string       { return r.adminNotes }
func (r *Refund) TransactionID() *uuid.UUID { return r.transactionID }
func (r *Refund) RequestedAt() time.Time    { return r.requestedAt }
func (r *Refund) ProcessedAt() *time.Time   { return r.processedAt }
