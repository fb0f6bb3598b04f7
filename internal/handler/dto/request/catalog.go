package request

import (
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/money"
)

type ServiceRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	ServiceType     string `json:"service_type"`
}

func (r ServiceRequest) ToDomain() (catalog.Attributes, error) {
	price, err := money.New(r.PriceCents)
	if err != nil {
		return catalog.Attributes{}, err
	}
	st, err := catalog.ParseServiceType(r.ServiceType)
	if err != nil {
		return catalog.Attributes{}, err
	}
	return catalog.Attributes{
		Title:           r.Title,
		Description:     r.Description,
		Price:           price,
		DurationMinutes: r.DurationMinutes,
		Type:            st,
	}, nil
}
