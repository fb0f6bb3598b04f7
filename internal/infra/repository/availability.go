package repository

import (
	"context"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	CreateAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAvailabilityParams) error
	FindAvailabilityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Availabilities, error)
	ListAvailabilitiesByProvider(ctx context.Context, db sqlc.DBTX, providerID uuid.UUID) ([]sqlc.Availabilities, error)
	DeleteAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type AvailabilityRepository struct {
	queries AvailabilityQueries
	db      sqlc.DBTX
}

func NewAvailabilityRepository(queries AvailabilityQueries, db sqlc.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityRepository) Create(ctx context.Context, a *availability.Availability) error {
	if err := r.queries.CreateAvailability(ctx, r.db, converter.AvailabilityToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*availability.Availability, error) {
	row, err := r.queries.FindAvailabilityByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availability by ID", err)
	}
	a, err := converter.AvailabilityToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt availability row", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *AvailabilityRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*availability.Availability, error) {
	rows, err := r.queries.ListAvailabilitiesByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability", err)
	}

	result := make([]*availability.Availability, 0, len(rows))
	for _, row := range rows {
		a, err := converter.AvailabilityToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt availability row", err, infra.KindDBFailure)
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteAvailability(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("availability not found", nil, infra.KindNotFound)
	}
	return nil
}
