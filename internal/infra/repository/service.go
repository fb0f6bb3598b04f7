package repository

import (
	"context"

	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) error
	FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (int64, error)
	ListServiceIDsByProvider(ctx context.Context, db sqlc.DBTX, providerID uuid.UUID) ([]uuid.UUID, error)
}

type ServiceRepository struct {
	queries ServiceQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries ServiceQueries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	if err := r.queries.CreateService(ctx, r.db, converter.ServiceToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return converter.ServiceToDomain(row), nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	n, err := r.queries.UpdateService(ctx, r.db, converter.ServiceToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) ListIDsByProvider(ctx context.Context, providerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListServiceIDsByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider services", err)
	}
	return ids, nil
}
