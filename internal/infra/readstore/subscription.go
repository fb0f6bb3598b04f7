package readstore

import (
	"context"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadQueries interface {
	FindCurrentSubscriptionView(ctx context.Context, db sqlc.DBTX, arg sqlc.FindCurrentSubscriptionViewParams) (sqlc.FindCurrentSubscriptionViewRow, error)
	ListActivePlans(ctx context.Context, db sqlc.DBTX) ([]sqlc.SubscriptionPlans, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionReadQueries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionReadStore) FindCurrent(ctx context.Context, providerID uuid.UUID, today calendar.Date) (*queries.SubscriptionView, error) {
	row, err := r.queries.FindCurrentSubscriptionView(ctx, r.db, sqlc.FindCurrentSubscriptionViewParams{
		ProviderID: providerID,
		Today:      pgconv.DateToPgtype(today),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find current subscription", err)
	}
	return toView[queries.SubscriptionView](row)
}

func (r *SubscriptionReadStore) ListActivePlans(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := r.queries.ListActivePlans(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plans", err)
	}
	return toViews[queries.PlanView](rows)
}
