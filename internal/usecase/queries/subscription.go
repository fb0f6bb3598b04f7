package queries

import (
	"context"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoCurrentSubscription = errs.NotFound("no current subscription")

type SubscriptionReadStore interface {
	FindCurrent(ctx context.Context, providerID uuid.UUID, today calendar.Date) (*SubscriptionView, error)
	ListActivePlans(ctx context.Context) ([]*PlanView, error)
}

type SubscriptionQueries interface {
	Current(ctx context.Context, providerID uuid.UUID) (*SubscriptionView, error)
	ListPlans(ctx context.Context) ([]*PlanView, error)
}

type subscriptionQueriesImpl struct {
	store SubscriptionReadStore
	clock clock.Clock
	sched shared.Scheduling
}

func NewSubscriptionQueries(store SubscriptionReadStore, clk clock.Clock, sched shared.Scheduling) SubscriptionQueries {
	return &subscriptionQueriesImpl{store: store, clock: clk, sched: sched}
}

func (q *subscriptionQueriesImpl) Current(ctx context.Context, providerID uuid.UUID) (*SubscriptionView, error) {
	v, err := q.store.FindCurrent(ctx, providerID, q.sched.Today(q.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoCurrentSubscription
		}
		return nil, err
	}
	return v, nil
}

func (q *subscriptionQueriesImpl) ListPlans(ctx context.Context) ([]*PlanView, error) {
	return q.store.ListActivePlans(ctx)
}
