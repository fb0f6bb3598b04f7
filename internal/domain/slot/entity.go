package slot

import (
	"time"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound      = errs.NotFound("slot not found")
	ErrSlotNotAvailable  = errs.Conflict("slot is not available")
	ErrSlotNotBooked     = errs.InvalidState("slot is not booked")
	ErrSlotNotBlocked    = errs.InvalidState("slot is not blocked")
	ErrSlotInPast        = errs.InvalidState("slot date is in the past")
	ErrSlotServiceDiffer = errs.Validation("slot does not belong to the service")
)

// Key identifies a slot within one service.
type Key struct {
	Date  calendar.Date
	Start calendar.TimeOfDay
}

// Span is the half-open interval [Start, End) a slot takes on its date.
type Span struct {
	Start calendar.TimeOfDay
	End   calendar.TimeOfDay
}

func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Occupied indexes the spans already taken on each date.
type Occupied map[calendar.Date][]Span

func (o Occupied) Add(date calendar.Date, span Span) {
	o[date] = append(o[date], span)
}

func (o Occupied) Overlaps(date calendar.Date, span Span) bool {
	for _, taken := range o[date] {
		if taken.Overlaps(span) {
			return true
		}
	}
	return false
}

type Slot struct {
	id        uuid.UUID
	serviceID uuid.UUID
	date      calendar.Date
	startTime calendar.TimeOfDay
	endTime   calendar.TimeOfDay
	status    Status
}

func newAvailable(serviceID uuid.UUID, date calendar.Date, start, end calendar.TimeOfDay) *Slot {
	return &Slot{
		id:        uuid.New(),
		serviceID: serviceID,
		date:      date,
		startTime: start,
		endTime:   end,
		status:    StatusAvailable,
	}
}

func Reconstruct(id, serviceID uuid.UUID, date calendar.Date, start, end calendar.TimeOfDay, status Status) *Slot {
	return &Slot{
		id:        id,
		serviceID: serviceID,
		date:      date,
		startTime: start,
		endTime:   end,
		status:    status,
	}
}

// Book is AVAILABLE -> BOOKED. Persistence must repeat the same check as a compare-and-set.
func (s *Slot) Book() error {
	if s.status != StatusAvailable {
		return ErrSlotNotAvailable
	}
	s.status = StatusBooked
	return nil
}

func (s *Slot) Release() error {
	if s.status != StatusBooked {
		return ErrSlotNotBooked
	}
	s.status = StatusAvailable
	return nil
}

func (s *Slot) Block() error {
	if s.status != StatusAvailable {
		return ErrSlotNotAvailable
	}
	s.status = StatusBlocked
	return nil
}

func (s *Slot) Unblock() error {
	if s.status != StatusBlocked {
		return ErrSlotNotBlocked
	}
	s.status = StatusAvailable
	return nil
}

// EnsureBookable checks everything except the status, which is guarded by Book.
func (s *Slot) EnsureBookable(serviceID uuid.UUID, today calendar.Date) error {
	if s.serviceID != serviceID {
		return ErrSlotServiceDiffer
	}
	if s.date.Before(today) {
		return ErrSlotInPast
	}
	return nil
}

func (s *Slot) StartsAt(loc *time.Location) time.Time {
	return s.date.At(s.startTime, loc)
}

func (s *Slot) Key() Key   { return Key{Date: s.date, Start: s.startTime} }
func (s *Slot) Span() Span { return Span{Start: s.startTime, End: s.endTime} }

func (s *Slot) ID() uuid.UUID                 { return s.id }
func (s *Slot) ServiceID() uuid.UUID          { return s.serviceID }
func (s *Slot) Date() calendar.Date           { return s.date }
func (s *Slot) StartTime() calendar.TimeOfDay { return s.startTime }
func (s *Slot) EndTime() calendar.TimeOfDay   { return s.endTime }
func (s *Slot) Status() Status                { return s.status }
func (s *Slot) IsAvailable() bool             { return s.status == StatusAvailable }
