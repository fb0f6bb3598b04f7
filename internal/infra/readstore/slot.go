package readstore

import (
	"context"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadQueries interface {
	ListAvailableSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableSlotsParams) ([]sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) ListAvailable(ctx context.Context, serviceID uuid.UUID, from calendar.Date, on *calendar.Date) ([]*queries.SlotView, error) {
	onDate := pgtype.Date{}
	if on != nil {
		onDate = pgconv.DateToPgtype(*on)
	}
	rows, err := r.queries.ListAvailableSlots(ctx, r.db, sqlc.ListAvailableSlotsParams{
		ServiceID: serviceID,
		FromDate:  pgconv.DateToPgtype(from),
		OnDate:    onDate,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	return toViews[queries.SlotView](rows)
}

type AvailabilityReadQueries interface {
	ListAvailabilitiesByProvider(ctx context.Context, db sqlc.DBTX, providerID uuid.UUID) ([]sqlc.Availabilities, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.AvailabilityView, error) {
	rows, err := r.queries.ListAvailabilitiesByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability", err)
	}
	return toViews[queries.AvailabilityView](rows)
}
