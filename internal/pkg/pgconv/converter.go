package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"service-marketplace/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeValue = errors.New("invalid time value in pgtype.Time")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func DateFromPgtype(pd pgtype.Date) calendar.Date {
	if !pd.Valid {
		return calendar.Date{}
	}
	return calendar.NewDate(pd.Time.Year(), pd.Time.Month(), pd.Time.Day())
}

// TimeOfDayFromPgtype converts a TIME column (microseconds since midnight).
func TimeOfDayFromPgtype(pt pgtype.Time) (calendar.TimeOfDay, error) {
	if !pt.Valid {
		return 0, ErrInvalidTimeValue
	}
	minutes := pt.Microseconds / int64(time.Minute/time.Microsecond)
	return calendar.NewTimeOfDay(int(minutes/60), int(minutes%60))
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func DateToPgtype(d calendar.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func TimeOfDayToPgtype(t calendar.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
