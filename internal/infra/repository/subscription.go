package repository

import (
	"context"

	"service-marketplace/internal/domain/subscription"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PlanQueries interface {
	CreatePlan(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePlanParams) error
	FindPlanByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SubscriptionPlans, error)
	UpdatePlanActive(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePlanActiveParams) (int64, error)
}

type PlanRepository struct {
	queries PlanQueries
	db      sqlc.DBTX
}

func NewPlanRepository(queries PlanQueries, db sqlc.DBTX) *PlanRepository {
	return &PlanRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PlanRepository) Create(ctx context.Context, p *subscription.Plan) error {
	if err := r.queries.CreatePlan(ctx, r.db, converter.PlanToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create plan", err)
	}
	return nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Plan, error) {
	row, err := r.queries.FindPlanByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find plan by ID", err)
	}
	return converter.PlanToDomain(row), nil
}

func (r *PlanRepository) UpdateActive(ctx context.Context, p *subscription.Plan) error {
	n, err := r.queries.UpdatePlanActive(ctx, r.db, sqlc.UpdatePlanActiveParams{ID: p.ID(), IsActive: p.IsActive()})
	if err != nil {
		return infra.WrapRepoErr("failed to update plan", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)
	}
	return nil
}

type SubscriptionQueries interface {
	CreateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubscriptionParams) error
	ListActiveSubscriptionsByProvider(ctx context.Context, db sqlc.DBTX, providerID uuid.UUID) ([]sqlc.Subscriptions, error)
	UpdateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSubscriptionParams) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries SubscriptionQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if err := r.queries.CreateSubscription(ctx, r.db, converter.SubscriptionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]*subscription.Subscription, error) {
	rows, err := r.queries.ListActiveSubscriptionsByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions", err)
	}
	subs := make([]*subscription.Subscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, converter.SubscriptionToDomain(row))
	}
	return subs, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	n, err := r.queries.UpdateSubscription(ctx, r.db, sqlc.UpdateSubscriptionParams{
		ID:        s.ID(),
		Status:    s.Status().String(),
		AutoRenew: s.AutoRenew(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}
