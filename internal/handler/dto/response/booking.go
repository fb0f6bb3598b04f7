package response

import (
	"service-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	ID         uuid.UUID `json:"id"`
	IsReplayed bool      `json:"is_replayed"`
}

type CancelBookingResponse struct {
	BookingID    uuid.UUID  `json:"booking_id"`
	RefundID     *uuid.UUID `json:"refund_id,omitempty"`
	RefundAmount int64      `json:"refund_amount_cents"`
	RefundStatus string     `json:"refund_status,omitempty"`
}

func FromCancelResult(r *commands.CancelBookingResult) *CancelBookingResponse {
	resp := &CancelBookingResponse{
		BookingID:    r.BookingID,
		RefundAmount: r.RefundAmount,
		RefundStatus: string(r.RefundStatus),
	}
	if r.RefundID != uuid.Nil {
		id := r.RefundID
		resp.RefundID = &id
	}
	return resp
}
