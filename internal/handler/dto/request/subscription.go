package request

import (
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/subscription"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	PlanID        uuid.UUID          `json:"plan_id" binding:"required"`
	PaymentMethod string             `json:"payment_method"`
	Card          PaymentCardRequest `json:"payment_card" binding:"required"`
}

func (r SubscribeRequest) ToCharge(now time.Time) (Charge, error) {
	return toCharge(r.PaymentMethod, r.Card, now)
}

type CreatePlanRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents" binding:"min=0"`
	DurationDays int    `json:"duration_days" binding:"required"`
}

func (r CreatePlanRequest) ToDomain() (*subscription.Plan, error) {
	price, err := money.New(r.PriceCents)
	if err != nil {
		return nil, err
	}
	return subscription.NewPlan(r.Name, r.Description, price, r.DurationDays)
}
