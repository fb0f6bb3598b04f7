package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/domain/slot"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/pkg/ptr"
	"service-marketplace/internal/usecase/shared"
)

const (
	createBookingEndpoint = "POST /bookings"
	idempotencyTTL        = 24 * time.Hour
)

const (
	bookingConfirmed       = "confirmed"
	bookingReplayed        = "replayed"
	bookingSlotUnavailable = "slot_unavailable"
	bookingPaymentFailed   = "payment_failed"
	bookingRejected        = "rejected"
)

type CreateBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type CancelBookingResult struct {
	BookingID    uuid.UUID
	RefundID     uuid.UUID
	RefundAmount int64
	RefundStatus refund.Status
}

//go:generate mockgen -destination=../../../tests/mock/commands/booking.go -package=commandsmock . BookingCommands

type BookingCommands interface {
	// Create books an AVAILABLE slot and charges the customer in one transaction.
	// idempotencyKey may be nil.
	Create(ctx context.Context, req reqdto.CreateBookingRequest, customerID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, customerID, bookingID uuid.UUID, req reqdto.CancelBookingRequest) (*CancelBookingResult, error)
	Complete(ctx context.Context, providerID, bookingID uuid.UUID) error
	MarkNoShow(ctx context.Context, providerID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	payments payments
	notifier shared.Notifier
	recorder shared.Recorder
	sched    shared.Scheduling
	clock    clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	gateways shared.PaymentGateways,
	notifier shared.Notifier,
	recorder shared.Recorder,
	sched shared.Scheduling,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		payments: newPayments(gateways, recorder, sched),
		notifier: notifier,
		recorder: recorder,
		sched:    sched,
		clock:    clock,
	}
}

func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	customerID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	now := c.clock.Now()
	today := c.sched.Today(now)

	charge, err := req.ToCharge(now)
	if err != nil {
		return nil, err
	}
	gw, err := c.payments.gateway(charge.Method)
	if err != nil {
		return nil, err
	}

	var (
		result *CreateBookingResult
		ref    string
		price  money.Money
		out    outbox
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		if idempotencyKey != nil {
			rec := shared.IdempotencyRecord{
				Key:         *idempotencyKey,
				UserID:      customerID,
				Endpoint:    createBookingEndpoint,
				RequestHash: req.Hash(),
				ExpiresAt:   now.Add(idempotencyTTL),
			}
			replayID, err := claimIdempotencyKey(ctx, tx, rec, now)
			if err != nil {
				return err
			}
			if replayID != nil {
				result = &CreateBookingResult{BookingID: *replayID, IsReplayed: true}
				return nil
			}
		}

		svc, err := tx.Services().FindByID(ctx, req.ServiceID)
		if err != nil {
			return notFoundAs(err, catalog.ErrServiceNotFound)
		}
		if err := svc.EnsureBookable(); err != nil {
			return err
		}

		s, err := tx.Slots().FindByID(ctx, req.SlotID)
		if err != nil {
			return notFoundAs(err, slot.ErrSlotNotFound)
		}
		if err := s.EnsureBookable(svc.ID(), today); err != nil {
			return err
		}
		if err := s.Book(); err != nil {
			return err
		}
		if err := tx.Slots().UpdateStatus(ctx, s, slot.StatusAvailable); err != nil {
			return conflictAs(err, slot.ErrSlotNotAvailable)
		}

		b := booking.New(customerID, svc.ID(), s.ID(), svc.Price(), now)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return slot.ErrSlotNotAvailable
			}
			return err
		}

		// A retried transaction must not charge twice
		if ref == "" {
			r, err := c.payments.charge(ctx, gw, b.TotalPrice(), charge.Card, fmt.Sprintf("Booking %s: %s", b.ID(), svc.Title()))
			if err != nil {
				return err
			}
			ref, price = r, b.TotalPrice()
		}

		t := ledger.Append(ledger.Entry{
			UserID:           customerID,
			BookingID:        ptr.Of(b.ID()),
			Type:             ledger.TypeBookingPayment,
			Amount:           b.TotalPrice(),
			Status:           ledger.StatusSuccess,
			PaymentMethod:    payment.Label(charge.Method, charge.Card),
			GatewayReference: ref,
			Description:      fmt.Sprintf("Payment for %s", svc.Title()),
		}, now)
		if err := tx.Ledger().Append(ctx, t); err != nil {
			return err
		}

		if err := b.Confirm(); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b, booking.StatusPending); err != nil {
			return conflictAs(err, booking.ErrConcurrentlyChange)
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, *idempotencyKey, customerID, b.ID()); err != nil {
				return err
			}
		}

		when := fmt.Sprintf("%s %s", s.Date(), s.StartTime())
		out.add(customerID, notification.TypeBookingConfirmed, "Booking confirmed",
			fmt.Sprintf("Your booking for %s on %s is confirmed.", svc.Title(), when))
		out.add(svc.ProviderID(), notification.TypeNewBookingReceived, "New booking received",
			fmt.Sprintf("%s was booked for %s.", svc.Title(), when))

		result = &CreateBookingResult{BookingID: b.ID()}
		return nil
	})
	if err != nil {
		c.onCreateFailed(ctx, customerID, gw, ref, price, err)
		return nil, err
	}

	if result.IsReplayed {
		c.recorder.BookingOutcome(bookingReplayed)
		slog.Info("booking replayed", "booking_id", result.BookingID, "customer_id", customerID)
		return result, nil
	}

	c.recorder.BookingOutcome(bookingConfirmed)
	slog.Info("booking confirmed", "booking_id", result.BookingID, "slot_id", req.SlotID, "customer_id", customerID)
	out.flush(ctx, c.notifier)
	return result, nil
}

func (c *bookingCommandsImpl) onCreateFailed(ctx context.Context, customerID uuid.UUID, gw shared.PaymentGateway, ref string, price money.Money, err error) {
	switch {
	case errs.IsKind(err, errs.KindPaymentFailed):
		c.recorder.BookingOutcome(bookingPaymentFailed)
		c.notifier.Notify(context.WithoutCancel(ctx), customerID, notification.Message{
			Type:  notification.TypePaymentFailed,
			Title: "Payment failed",
			Body:  "Your booking could not be completed because the payment failed.",
		})
	case errs.IsKind(err, errs.KindConflict):
		c.recorder.BookingOutcome(bookingSlotUnavailable)
	default:
		c.recorder.BookingOutcome(bookingRejected)
	}

	// The charge went through but the transaction did not commit
	if ref != "" {
		if _, rerr := c.payments.refund(context.WithoutCancel(ctx), gw, ref, price); rerr != nil {
			slog.Error("failed to reverse charge after rollback", "reference", ref, "error", rerr)
			return
		}
		slog.Warn("charge reversed after rollback", "reference", ref, "error", err)
	}
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, customerID, bookingID uuid.UUID, req reqdto.CancelBookingRequest) (*CancelBookingResult, error) {
	now := c.clock.Now()
	finalizer := &refundFinalizer{payments: c.payments}

	var (
		result *CancelBookingResult
		auto   bool
		out    outbox
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}
		if err := b.EnsureOwnedBy(customerID); err != nil {
			return err
		}

		from := b.Status()
		if err := b.Cancel(req.Reason, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			return conflictAs(err, booking.ErrConcurrentlyChange)
		}

		s, err := tx.Slots().FindByID(ctx, b.SlotID())
		if err != nil {
			return notFoundAs(err, slot.ErrSlotNotFound)
		}
		if s.Status() == slot.StatusBooked {
			if err := s.Release(); err != nil {
				return err
			}
			if err := tx.Slots().UpdateStatus(ctx, s, slot.StatusBooked); err != nil {
				return conflictAs(err, booking.ErrConcurrentlyChange)
			}
		}

		decision := refund.Decide(b.TotalPrice(), s.StartsAt(c.sched.Location).Sub(now))
		reason := ""
		if b.CancellationReason() != nil {
			reason = *b.CancellationReason()
		}
		r := refund.New(b.ID(), decision, reason, now)
		if err := tx.Refunds().Create(ctx, r); err != nil {
			return err
		}

		auto = decision.AutoFinalize
		if auto {
			if err := finalizer.finalize(ctx, tx, b, r, now); err != nil {
				return err
			}
			if err := tx.Refunds().Update(ctx, r, refund.StatusApproved); err != nil {
				return err
			}
			out.add(customerID, notification.TypeRefundApproved, "Refund approved",
				fmt.Sprintf("A full refund of %s has been issued.", r.Amount()))
		}

		svc, err := tx.Services().FindByID(ctx, b.ServiceID())
		if err != nil {
			return notFoundAs(err, catalog.ErrServiceNotFound)
		}
		when := fmt.Sprintf("%s %s", s.Date(), s.StartTime())
		out.add(customerID, notification.TypeBookingCancelled, "Booking cancelled",
			fmt.Sprintf("Your booking for %s on %s was cancelled.", svc.Title(), when))
		out.add(svc.ProviderID(), notification.TypeBookingCancelled, "Booking cancelled",
			fmt.Sprintf("The booking for %s on %s was cancelled by the customer.", svc.Title(), when))

		result = &CancelBookingResult{
			BookingID:    b.ID(),
			RefundID:     r.ID(),
			RefundAmount: r.Amount().Cents(),
			RefundStatus: r.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if auto {
		c.recorder.RefundDecision(decisionAutoApproved)
	} else {
		c.recorder.RefundDecision(decisionPending)
	}
	slog.Info("booking cancelled", "booking_id", bookingID, "refund_id", result.RefundID, "refund_status", result.RefundStatus)
	out.flush(ctx, c.notifier)
	return result, nil
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, providerID, bookingID uuid.UUID) error {
	now := c.clock.Now()

	var (
		ref    string
		method payment.Method
		out    outbox
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		b, svc, err := c.loadProviderBooking(ctx, tx, providerID, bookingID)
		if err != nil {
			return err
		}

		from := b.Status()
		if err := b.Complete(now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			return conflictAs(err, booking.ErrConcurrentlyChange)
		}

		if ref == "" {
			r, m, err := c.payments.payout(ctx, b.TotalPrice(), providerID, fmt.Sprintf("Payout for booking %s", b.ID()))
			if err != nil {
				return err
			}
			ref, method = r, m
		}

		t := ledger.Append(ledger.Entry{
			UserID:           providerID,
			BookingID:        ptr.Of(b.ID()),
			Type:             ledger.TypePayout,
			Amount:           b.TotalPrice(),
			Status:           ledger.StatusSuccess,
			PaymentMethod:    method.String() + " transfer",
			GatewayReference: ref,
			Description:      fmt.Sprintf("Payout for %s", svc.Title()),
		}, now)
		if err := tx.Ledger().Append(ctx, t); err != nil {
			return err
		}

		out.add(providerID, notification.TypePaymentSuccess, "Payout processed",
			fmt.Sprintf("A payout of %s for %s is on its way.", b.TotalPrice(), svc.Title()))
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("booking completed", "booking_id", bookingID, "provider_id", providerID, "payout_ref", ref)
	out.flush(ctx, c.notifier)
	return nil
}

func (c *bookingCommandsImpl) MarkNoShow(ctx context.Context, providerID, bookingID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, _, err := c.loadProviderBooking(ctx, tx, providerID, bookingID)
		if err != nil {
			return err
		}
		from := b.Status()
		if err := b.MarkNoShow(); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			return conflictAs(err, booking.ErrConcurrentlyChange)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("booking marked as no-show", "booking_id", bookingID, "provider_id", providerID)
	return nil
}

func (c *bookingCommandsImpl) loadProviderBooking(ctx context.Context, tx shared.Tx, providerID, bookingID uuid.UUID) (*booking.Booking, *catalog.Service, error) {
	b, err := tx.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return nil, nil, notFoundAs(err, booking.ErrBookingNotFound)
	}
	svc, err := tx.Services().FindByID(ctx, b.ServiceID())
	if err != nil {
		return nil, nil, notFoundAs(err, catalog.ErrServiceNotFound)
	}
	if err := svc.EnsureOwnedBy(providerID); err != nil {
		return nil, nil, err
	}
	return b, svc, nil
}

// claimIdempotencyKey returns the booking to replay, or nil when the request should run.
// An expired key is taken over by the new request.
func claimIdempotencyKey(ctx context.Context, tx shared.Tx, rec shared.IdempotencyRecord, now time.Time) (*uuid.UUID, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, rec)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, rec.Key, rec.UserID)
	if err != nil {
		return nil, err
	}

	if existing.ExpiresAt.Before(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, rec, now)
		if err != nil {
			return nil, err
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != rec.RequestHash {
		return nil, errs.ErrIdempotencyMismatch
	}
	if existing.Status == shared.IdempotencyCompleted && existing.ResultBookingID != nil {
		return existing.ResultBookingID, nil
	}
	return nil, errs.ErrIdempotencyInProgress
}
