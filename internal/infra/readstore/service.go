package readstore

import (
	"context"

	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	FindServiceViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindServiceViewByIDRow, error)
	ListActiveServices(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveServicesParams) ([]sqlc.ListActiveServicesRow, error)
	ListServicesByProvider(ctx context.Context, db sqlc.DBTX, providerID uuid.UUID) ([]sqlc.ListServicesByProviderRow, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.FindServiceViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service view", err)
	}
	return toView[queries.ServiceView](row)
}

func (r *ServiceReadStore) ListActive(ctx context.Context, ks queries.Keyset) ([]*queries.ServiceView, error) {
	after, afterID := keysetArgs(ks)
	rows, err := r.queries.ListActiveServices(ctx, r.db, sqlc.ListActiveServicesParams{
		AfterCreatedAt: after,
		AfterID:        afterID,
		RowLimit:       ks.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}
	return toViews[queries.ServiceView](rows)
}

func (r *ServiceReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServicesByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider services", err)
	}
	return toViews[queries.ServiceView](rows)
}
