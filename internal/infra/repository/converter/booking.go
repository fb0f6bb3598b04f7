package converter

import (
	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/refund"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		CustomerID:      b.CustomerID(),
		ServiceID:       b.ServiceID(),
		SlotID:          b.SlotID(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		BookingDate:     pgconv.TimeToPgtype(b.BookingDate()),
	}
}

func BookingToStatusParams(b *booking.Booking, from booking.Status) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:                 b.ID(),
		FromStatus:         from.String(),
		ToStatus:           b.Status().String(),
		CancellationReason: pgconv.StringPtrToPgtype(b.CancellationReason()),
		CancelledAt:        pgconv.TimePtrToPgtype(b.CancelledAt()),
		CompletedAt:        pgconv.TimePtrToPgtype(b.CompletedAt()),
	}
}

func BookingToDomain(row sqlc.Bookings) *booking.Booking {
	return booking.Reconstruct(
		row.ID,
		row.CustomerID,
		row.ServiceID,
		row.SlotID,
		money.FromCents(row.TotalPriceCents),
		booking.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.CancellationReason),
		pgconv.TimeFromPgtype(row.BookingDate),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
	)
}

func RefundToCreateParams(r *refund.Refund) sqlc.CreateRefundParams {
	return sqlc.CreateRefundParams{
		ID:            r.ID(),
		BookingID:     r.BookingID(),
		AmountCents:   r.Amount().Cents(),
		Reason:        r.Reason(),
		Status:        r.Status().String(),
		AdminNotes:    pgconv.StringPtrToPgtype(r.AdminNotes()),
		TransactionID: pgconv.UUIDPtrToPgtype(r.TransactionID()),
		RequestedAt:   pgconv.TimeToPgtype(r.RequestedAt()),
		ProcessedAt:   pgconv.TimePtrToPgtype(r.ProcessedAt()),
	}
}

func RefundToUpdateParams(r *refund.Refund, from refund.Status) sqlc.UpdateRefundParams {
	return sqlc.UpdateRefundParams{
		ID:            r.ID(),
		FromStatus:    from.String(),
		ToStatus:      r.Status().String(),
		AdminNotes:    pgconv.StringPtrToPgtype(r.AdminNotes()),
		TransactionID: pgconv.UUIDPtrToPgtype(r.TransactionID()),
		ProcessedAt:   pgconv.TimePtrToPgtype(r.ProcessedAt()),
	}
}

func RefundToDomain(row sqlc.Refunds) *refund.Refund {
	return refund.Reconstruct(
		row.ID,
		row.BookingID,
		money.FromCents(row.AmountCents),
		row.Reason,
		refund.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.AdminNotes),
		pgconv.UUIDPtrFromPgtype(row.TransactionID),
		pgconv.TimeFromPgtype(row.RequestedAt),
		pgconv.TimePtrFromPgtype(row.ProcessedAt),
	)
}
