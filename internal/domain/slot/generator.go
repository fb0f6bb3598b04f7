package slot

import (
	"time"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/calendar"

	"github.com/google/uuid"
)

const DefaultHorizonDays = 30

// Generator expands weekly availability into dated slots over a rolling horizon.
type Generator struct {
	horizonDays int
}

func NewGenerator(horizonDays int) Generator {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return Generator{horizonDays: horizonDays}
}

func (g Generator) HorizonDays() int { return g.horizonDays }

// Window returns the half-open date range [today, today+horizon).
func (g Generator) Window(today calendar.Date) (from, to calendar.Date) {
	return today, today.AddDays(g.horizonDays)
}

// Generate returns the slots missing from existing. Only full-duration steps
// that end within their window are emitted, and a step that overlaps an
// existing slot is skipped. Existing slots are never touched.
func (g Generator) Generate(
	serviceID uuid.UUID,
	duration time.Duration,
	windows []*availability.Availability,
	today calendar.Date,
	existing Occupied,
) []*Slot {
	if duration < time.Minute || len(windows) == 0 {
		return nil
	}

	byDay := make(map[calendar.Weekday][]*availability.Availability, len(windows))
	for _, w := range windows {
		byDay[w.DayOfWeek()] = append(byDay[w.DayOfWeek()], w)
	}

	taken := make(Occupied, len(existing))
	for date, spans := range existing {
		taken[date] = append([]Span(nil), spans...)
	}

	var out []*Slot
	for i := 0; i < g.horizonDays; i++ {
		date := today.AddDays(i)
		for _, w := range byDay[date.Weekday()] {
			for cur := w.StartTime(); cur.Add(duration) <= w.EndTime(); cur = cur.Add(duration) {
				span := Span{Start: cur, End: cur.Add(duration)}
				if taken.Overlaps(date, span) {
					continue
				}
				taken.Add(date, span)
				out = append(out, newAvailable(serviceID, date, span.Start, span.End))
			}
		}
	}
	return out
}
