package converter

import (
	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/slot"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
)

func AvailabilityToCreateParams(a *availability.Availability) sqlc.CreateAvailabilityParams {
	return sqlc.CreateAvailabilityParams{
		ID:         a.ID(),
		ProviderID: a.ProviderID(),
		DayOfWeek:  a.DayOfWeek().String(),
		StartTime:  pgconv.TimeOfDayToPgtype(a.StartTime()),
		EndTime:    pgconv.TimeOfDayToPgtype(a.EndTime()),
	}
}

func AvailabilityToDomain(row sqlc.Availabilities) (*availability.Availability, error) {
	day, err := calendar.ParseWeekday(row.DayOfWeek)
	if err != nil {
		return nil, err
	}
	start, err := pgconv.TimeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := pgconv.TimeOfDayFromPgtype(row.EndTime)
	if err != nil {
		return nil, err
	}
	return availability.Reconstruct(row.ID, row.ProviderID, day, start, end, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func SlotToInsertParams(s *slot.Slot) sqlc.InsertSlotParams {
	return sqlc.InsertSlotParams{
		ID:        s.ID(),
		ServiceID: s.ServiceID(),
		SlotDate:  pgconv.DateToPgtype(s.Date()),
		StartTime: pgconv.TimeOfDayToPgtype(s.StartTime()),
		EndTime:   pgconv.TimeOfDayToPgtype(s.EndTime()),
		Status:    s.Status().String(),
	}
}

func SlotToDomain(row sqlc.Slots) (*slot.Slot, error) {
	start, err := pgconv.TimeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := pgconv.TimeOfDayFromPgtype(row.EndTime)
	if err != nil {
		return nil, err
	}
	return slot.Reconstruct(row.ID, row.ServiceID, pgconv.DateFromPgtype(row.SlotDate), start, end, slot.Status(row.Status)), nil
}

func SlotSpanFromRow(row sqlc.ListSlotSpansInRangeRow) (calendar.Date, slot.Span, error) {
	start, err := pgconv.TimeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return calendar.Date{}, slot.Span{}, err
	}
	end, err := pgconv.TimeOfDayFromPgtype(row.EndTime)
	if err != nil {
		return calendar.Date{}, slot.Span{}, err
	}
	return pgconv.DateFromPgtype(row.SlotDate), slot.Span{Start: start, End: end}, nil
}
