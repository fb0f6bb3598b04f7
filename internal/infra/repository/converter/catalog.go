package converter

import (
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/money"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
)

func ServiceToCreateParams(s *catalog.Service) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams{
		ID:              s.ID(),
		ProviderID:      s.ProviderID(),
		Title:           s.Title(),
		Description:     s.Description(),
		PriceCents:      s.Price().Cents(),
		DurationMinutes: int32(s.DurationMinutes()), // #nosec G115 -- bounded by domain validation
		ServiceType:     s.ServiceType().String(),
		IsActive:        s.IsActive(),
	}
}

func ServiceToUpdateParams(s *catalog.Service) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:              s.ID(),
		Title:           s.Title(),
		Description:     s.Description(),
		PriceCents:      s.Price().Cents(),
		DurationMinutes: int32(s.DurationMinutes()), // #nosec G115 -- bounded by domain validation
		ServiceType:     s.ServiceType().String(),
		IsActive:        s.IsActive(),
	}
}

func ServiceToDomain(row sqlc.Services) *catalog.Service {
	return catalog.ReconstructService(
		row.ID,
		row.ProviderID,
		row.Title,
		row.Description,
		money.FromCents(row.PriceCents),
		int(row.DurationMinutes),
		catalog.ServiceType(row.ServiceType),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
