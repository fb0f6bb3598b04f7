package queries

import (
	"context"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	// ListAvailable returns AVAILABLE slots dated from onward, restricted to on when set.
	ListAvailable(ctx context.Context, serviceID uuid.UUID, from calendar.Date, on *calendar.Date) ([]*SlotView, error)
}

type AvailabilityReadStore interface {
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*AvailabilityView, error)
}

type SlotQueries interface {
	ListAvailable(ctx context.Context, serviceID uuid.UUID, on *calendar.Date) ([]*SlotView, error)
	ListAvailability(ctx context.Context, providerID uuid.UUID) ([]*AvailabilityView, error)
}

type slotQueriesImpl struct {
	slots        SlotReadStore
	availability AvailabilityReadStore
	clock        clock.Clock
	sched        shared.Scheduling
}

func NewSlotQueries(slots SlotReadStore, availability AvailabilityReadStore, clk clock.Clock, sched shared.Scheduling) SlotQueries {
	return &slotQueriesImpl{
		slots:        slots,
		availability: availability,
		clock:        clk,
		sched:        sched,
	}
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context, serviceID uuid.UUID, on *calendar.Date) ([]*SlotView, error) {
	today := q.sched.Today(q.clock.Now())
	if on != nil && on.Before(today) {
		return []*SlotView{}, nil
	}
	return q.slots.ListAvailable(ctx, serviceID, today, on)
}

func (q *slotQueriesImpl) ListAvailability(ctx context.Context, providerID uuid.UUID) ([]*AvailabilityView, error) {
	return q.availability.ListByProvider(ctx, providerID)
}
