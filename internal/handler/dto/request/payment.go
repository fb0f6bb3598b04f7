package request

import (
	"time"

	"service-marketplace/internal/domain/payment"
)

type PaymentCardRequest struct {
	Number   string `json:"card_number" binding:"required"`
	Holder   string `json:"card_holder_name" binding:"required"`
	ExpMonth int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpYear  int    `json:"expiry_year" binding:"required"`
	CVV      string `json:"cvv" binding:"required"`
}

func (r PaymentCardRequest) ToDomain(now time.Time) (payment.Card, error) {
	return payment.NewCard(r.Number, r.Holder, r.ExpMonth, r.ExpYear, r.CVV, now)
}

// Charge is a validated payment instruction.
type Charge struct {
	Method payment.Method
	Card   payment.Card
}

func toCharge(method string, card PaymentCardRequest, now time.Time) (Charge, error) {
	m, err := payment.ParseMethod(method)
	if err != nil {
		return Charge{}, err
	}
	c, err := card.ToDomain(now)
	if err != nil {
		return Charge{}, err
	}
	return Charge{Method: m, Card: c}, nil
}
