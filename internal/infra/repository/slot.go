package repository

import (
	"context"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotQueries interface {
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotParams) (int64, error)
	ListSlotSpansInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotSpansInRangeParams) ([]sqlc.ListSlotSpansInRangeRow, error)
	FindSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error)
	DeleteUnbookedSlotsByProviderWeekday(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteUnbookedSlotsByProviderWeekdayParams) (int64, error)
	DeleteAvailableSlotsByServiceFrom(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteAvailableSlotsByServiceFromParams) (int64, error)
}

type SlotRepository struct {
	queries SlotQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) Insert(ctx context.Context, s *slot.Slot) (bool, error) {
	n, err := r.queries.InsertSlot(ctx, r.db, converter.SlotToInsertParams(s))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert slot", err)
	}
	return n > 0, nil
}

func (r *SlotRepository) Occupied(ctx context.Context, serviceID uuid.UUID, from, to calendar.Date) (slot.Occupied, error) {
	rows, err := r.queries.ListSlotSpansInRange(ctx, r.db, sqlc.ListSlotSpansInRangeParams{
		ServiceID: serviceID,
		FromDate:  pgconv.DateToPgtype(from),
		ToDate:    pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list existing slots", err)
	}

	occupied := make(slot.Occupied, len(rows))
	for _, row := range rows {
		date, span, err := converter.SlotSpanFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt slot row", err, infra.KindDBFailure)
		}
		occupied.Add(date, span)
	}
	return occupied, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row, err := r.queries.FindSlotByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	s, err := converter.SlotToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt slot row", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, s *slot.Slot, from slot.Status) error {
	n, err := r.queries.UpdateSlotStatus(ctx, r.db, sqlc.UpdateSlotStatusParams{
		ToStatus:   s.Status().String(),
		ID:         s.ID(),
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update slot status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *SlotRepository) DeleteUnbookedByProviderWeekday(ctx context.Context, providerID uuid.UUID, day calendar.Weekday) (int64, error) {
	n, err := r.queries.DeleteUnbookedSlotsByProviderWeekday(ctx, r.db, sqlc.DeleteUnbookedSlotsByProviderWeekdayParams{
		ProviderID: providerID,
		IsoDow:     int32(day.ISO()), // #nosec G115 -- 1..7
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete slots for weekday", err)
	}
	return n, nil
}

func (r *SlotRepository) DeleteAvailableFrom(ctx context.Context, serviceID uuid.UUID, from calendar.Date) (int64, error) {
	n, err := r.queries.DeleteAvailableSlotsByServiceFrom(ctx, r.db, sqlc.DeleteAvailableSlotsByServiceFromParams{
		ServiceID: serviceID,
		FromDate:  pgconv.DateToPgtype(from),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete open slots", err)
	}
	return n, nil
}
