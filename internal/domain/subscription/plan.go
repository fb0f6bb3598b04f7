package subscription

import (
	"strings"
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound      = errs.NotFound("subscription plan not found")
	ErrEmptyPlanName     = errs.Validation("plan name cannot be empty")
	ErrInvalidPlanLength = errs.Validation("plan duration must be between 1 and 3660 days")
)

const MaxPlanDays = 3660

type Plan struct {
	id           uuid.UUID
	name         string
	description  string
	price        money.Money
	durationDays int
	active       bool
	createdAt    time.Time
}

func NewPlan(name, description string, price money.Money, durationDays int) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPlanName
	}
	if durationDays <= 0 || durationDays > MaxPlanDays {
		return nil, ErrInvalidPlanLength
	}
	return &Plan{
		id:           uuid.New(),
		name:         name,
		description:  description,
		price:        price,
		durationDays: durationDays,
		active:       true,
	}, nil
}

func ReconstructPlan(id uuid.UUID, name, description string, price money.Money, durationDays int, active bool, createdAt time.Time) *Plan {
	return &Plan{
		id:           id,
		name:         name,
		description:  description,
		price:        price,
		durationDays: durationDays,
		active:       active,
		createdAt:    createdAt,
	}
}

func (p *Plan) Deactivate() { p.active = false }

func (p *Plan) ID() uuid.UUID       { return p.id }
func (p *Plan) Name() string        { return p.name }
func (p *Plan) Description() string { return p.description }
func (p *Plan) Price() money.Money  { return p.price }
func (p *Plan) DurationDays() int   { return p.durationDays }
func (p *Plan) IsActive() bool      { return p.active }
func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}
