//go:build unit || e2e

package builder

import (
	reqdto "service-marketplace/internal/handler/dto/request"

	"github.com/google/uuid"
)

const (
	ValidCardNumber    = "4242424242424242"
	DeclinedCardNumber = "0000000000000000"
)

type BookingBuilder struct {
	ServiceID     uuid.UUID
	SlotID        uuid.UUID
	PaymentMethod string
	CardNumber    string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ServiceID:     uuid.New(),
		SlotID:        uuid.New(),
		PaymentMethod: "credit_card",
		CardNumber:    ValidCardNumber,
	}
}

func (b *BookingBuilder) WithService(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithSlot(id uuid.UUID) *BookingBuilder {
	b.SlotID = id
	return b
}

func (b *BookingBuilder) WithCard(number string) *BookingBuilder {
	b.CardNumber = number
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:     b.ServiceID,
		SlotID:        b.SlotID,
		PaymentMethod: b.PaymentMethod,
		Card: reqdto.PaymentCardRequest{
			Number:   b.CardNumber,
			Holder:   "Test User",
			ExpMonth: 12,
			ExpYear:  2035,
			CVV:      "123",
		},
	}
}
