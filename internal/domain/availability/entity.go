package availability

import (
	"time"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow     = errs.Validation("end time must be after start time")
	ErrOverlappingWindow = errs.Conflict("availability overlaps an existing window on the same day")
	ErrNotFound          = errs.NotFound("availability not found")
	ErrNotOwner          = errs.Forbidden("availability belongs to another provider")
)

// Availability is a recurring weekly window during which a provider accepts bookings.
type Availability struct {
	id         uuid.UUID
	providerID uuid.UUID
	dayOfWeek  calendar.Weekday
	startTime  calendar.TimeOfDay
	endTime    calendar.TimeOfDay
	createdAt  time.Time
}

func New(providerID uuid.UUID, day calendar.Weekday, start, end calendar.TimeOfDay) (*Availability, error) {
	if !day.IsValid() {
		return nil, calendar.ErrInvalidWeekday
	}
	if end <= start {
		return nil, ErrInvalidWindow
	}
	return &Availability{
		id:         uuid.New(),
		providerID: providerID,
		dayOfWeek:  day,
		startTime:  start,
		endTime:    end,
	}, nil
}

func Reconstruct(id, providerID uuid.UUID, day calendar.Weekday, start, end calendar.TimeOfDay, createdAt time.Time) *Availability {
	return &Availability{
		id:         id,
		providerID: providerID,
		dayOfWeek:  day,
		startTime:  start,
		endTime:    end,
		createdAt:  createdAt,
	}
}

// Overlaps reports whether both windows share a day and intersect.
// Windows that only touch at an endpoint do not overlap.
func (a *Availability) Overlaps(o *Availability) bool {
	return a.dayOfWeek == o.dayOfWeek && a.startTime < o.endTime && o.startTime < a.endTime
}

func CheckNoOverlap(candidate *Availability, existing []*Availability) error {
	for _, e := range existing {
		if e.id == candidate.id {
			continue
		}
		if candidate.Overlaps(e) {
			return ErrOverlappingWindow
		}
	}
	return nil
}

func (a *Availability) EnsureOwnedBy(providerID uuid.UUID) error {
	if a.providerID != providerID {
		return ErrNotOwner
	}
	return nil
}

func (a *Availability) ID() uuid.UUID                 { return a.id }
func (a *Availability) ProviderID() uuid.UUID         { return a.providerID }
func (a *Availability) DayOfWeek() calendar.Weekday   { return a.dayOfWeek }
func (a *Availability) StartTime() calendar.TimeOfDay { return a.startTime }
func (a *Availability) EndTime() calendar.TimeOfDay   { return a.endTime }
func (a *Availability) CreatedAt() time.Time          { return a.createdAt }
