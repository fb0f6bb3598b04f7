package subscription

import (
	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadySubscribed    = errs.Conflict("provider already has an active subscription")
	ErrNoActiveSubscription = errs.Forbidden("an active subscription is required")
	ErrProviderNotApproved  = errs.Forbidden("provider account is not approved")
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

type Subscription struct {
	id         uuid.UUID
	providerID uuid.UUID
	planID     uuid.UUID
	startDate  calendar.Date
	endDate    calendar.Date
	status     Status
	autoRenew  bool
}

// Start creates an ACTIVE subscription covering [today, today+durationDays].
func Start(providerID uuid.UUID, plan *Plan, today calendar.Date) *Subscription {
	return &Subscription{
		id:         uuid.New(),
		providerID: providerID,
		planID:     plan.ID(),
		startDate:  today,
		endDate:    today.AddDays(plan.DurationDays()),
		status:     StatusActive,
		autoRenew:  true,
	}
}

func Reconstruct(id, providerID, planID uuid.UUID, start, end calendar.Date, status Status, autoRenew bool) *Subscription {
	return &Subscription{
		id:         id,
		providerID: providerID,
		planID:     planID,
		startDate:  start,
		endDate:    end,
		status:     status,
		autoRenew:  autoRenew,
	}
}

func (s *Subscription) ActiveOn(today calendar.Date) bool {
	return s.status == StatusActive && !s.endDate.Before(today)
}

// IsStale reports an ACTIVE row whose end date has passed.
func (s *Subscription) IsStale(today calendar.Date) bool {
	return s.status == StatusActive && s.endDate.Before(today)
}

func (s *Subscription) Expire() {
	s.status = StatusExpired
}

func (s *Subscription) CancelAutoRenew() {
	s.autoRenew = false
}

func (s *Subscription) ID() uuid.UUID            { return s.id }
func (s *Subscription) ProviderID() uuid.UUID    { return s.providerID }
func (s *Subscription) PlanID() uuid.UUID        { return s.planID }
func (s *Subscription) StartDate() calendar.Date { return s.startDate }
func (s *Subscription) EndDate() calendar.Date   { return s.endDate }
func (s *Subscription) Status() Status           { return s.status }
func (s *Subscription) AutoRenew() bool          { return s.autoRenew }
