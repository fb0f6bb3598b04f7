package request

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID     uuid.UUID          `json:"service_id" binding:"required"`
	SlotID        uuid.UUID          `json:"slot_id" binding:"required"`
	PaymentMethod string             `json:"payment_method"`
	Card          PaymentCardRequest `json:"payment_card" binding:"required"`
}

func (r CreateBookingRequest) ToCharge(now time.Time) (Charge, error) {
	return toCharge(r.PaymentMethod, r.Card, now)
}

// Hash fingerprints what identifies a booking request for idempotency.
// Card details other than the last digits are left out.
func (r CreateBookingRequest) Hash() string {
	last4 := r.Card.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s", r.ServiceID, r.SlotID, r.PaymentMethod, last4)))
	return hex.EncodeToString(sum[:])
}

type CancelBookingRequest struct {
	Reason string `json:"cancellation_reason" binding:"max=500"`
}
