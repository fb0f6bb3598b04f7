package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/domain/refund"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/ptr"
	"service-marketplace/internal/usecase/shared"
)

const (
	decisionAutoApproved = "auto_approved"
	decisionPending      = "pending"
	decisionApproved     = "approved"
	decisionRejected     = "rejected"
)

type RefundCommands interface {
	Approve(ctx context.Context, refundID uuid.UUID, req reqdto.DecisionRequest) error
	Reject(ctx context.Context, refundID uuid.UUID, req reqdto.DecisionRequest) error
}

// refundFinalizer pays an APPROVED refund back through the gateway of the original
// charge, appends the REFUND row and completes the refund.
type refundFinalizer struct {
	payments payments
	// gateway reference memoised across transaction retries
	ref string
}

func (f *refundFinalizer) finalize(ctx context.Context, tx shared.Tx, b *booking.Booking, r *refund.Refund, now time.Time) error {
	charge, err := tx.Ledger().FindBookingPayment(ctx, b.ID())
	if err != nil {
		return err
	}

	method, err := payment.MethodFromLabel(charge.PaymentMethod())
	if err != nil {
		return err
	}
	gw, err := f.payments.gateway(method)
	if err != nil {
		return err
	}

	if f.ref == "" {
		ref, err := f.payments.refund(ctx, gw, charge.GatewayReference(), r.Amount())
		if err != nil {
			return err
		}
		f.ref = ref
	}

	t := ledger.Append(ledger.Entry{
		UserID:           b.CustomerID(),
		BookingID:        ptr.Of(b.ID()),
		Type:             ledger.TypeRefund,
		Amount:           r.Amount(),
		Status:           ledger.StatusSuccess,
		PaymentMethod:    charge.PaymentMethod(),
		GatewayReference: f.ref,
		Description:      fmt.Sprintf("Refund for booking %s", b.ID()),
	}, now)
	if err := tx.Ledger().Append(ctx, t); err != nil {
		return err
	}

	if err := r.Complete(t.ID(), now); err != nil {
		return err
	}
	return nil
}

type refundCommandsImpl struct {
	uow      shared.UnitOfWork
	payments payments
	notifier shared.Notifier
	recorder shared.Recorder
	clock    clock.Clock
}

func NewRefundCommands(
	uow shared.UnitOfWork,
	gateways shared.PaymentGateways,
	notifier shared.Notifier,
	recorder shared.Recorder,
	sched shared.Scheduling,
	clock clock.Clock,
) RefundCommands {
	return &refundCommandsImpl{
		uow:      uow,
		payments: newPayments(gateways, recorder, sched),
		notifier: notifier,
		recorder: recorder,
		clock:    clock,
	}
}

func (c *refundCommandsImpl) Approve(ctx context.Context, refundID uuid.UUID, req reqdto.DecisionRequest) error {
	now := c.clock.Now()
	finalizer := &refundFinalizer{payments: c.payments}
	var out outbox

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		r, err := tx.Refunds().FindByID(ctx, refundID)
		if err != nil {
			return notFoundAs(err, refund.ErrRefundNotFound)
		}
		from := r.Status()
		if err := r.Approve(req.Notes); err != nil {
			return err
		}

		b, err := tx.Bookings().FindByID(ctx, r.BookingID())
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		if err := finalizer.finalize(ctx, tx, b, r, now); err != nil {
			return err
		}
		if err := tx.Refunds().Update(ctx, r, from); err != nil {
			return conflictAs(err, refund.ErrNotPending)
		}

		out.add(b.CustomerID(), notification.TypeRefundApproved, "Refund approved",
			fmt.Sprintf("Your refund of %s has been approved and processed.", r.Amount()))
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.RefundDecision(decisionApproved)
	slog.Info("refund approved", "refund_id", refundID, "transaction_ref", finalizer.ref)
	out.flush(ctx, c.notifier)
	return nil
}

func (c *refundCommandsImpl) Reject(ctx context.Context, refundID uuid.UUID, req reqdto.DecisionRequest) error {
	now := c.clock.Now()
	var out outbox

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		r, err := tx.Refunds().FindByID(ctx, refundID)
		if err != nil {
			return notFoundAs(err, refund.ErrRefundNotFound)
		}
		from := r.Status()
		if err := r.Reject(req.Notes, now); err != nil {
			return err
		}
		if err := tx.Refunds().Update(ctx, r, from); err != nil {
			return conflictAs(err, refund.ErrNotPending)
		}

		b, err := tx.Bookings().FindByID(ctx, r.BookingID())
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		body := "Your refund request has been rejected."
		if req.Notes != "" {
			body += " Reason: " + req.Notes
		}
		out.add(b.CustomerID(), notification.TypeRefundRejected, "Refund rejected", body)
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.RefundDecision(decisionRejected)
	slog.Info("refund rejected", "refund_id", refundID)
	out.flush(ctx, c.notifier)
	return nil
}
