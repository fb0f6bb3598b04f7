// Package calendar holds the wall-clock value types used by scheduling:
// a calendar Date, a TimeOfDay in minutes and an ISO Weekday.
// All of them are interpreted in one canonical location chosen by configuration.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"service-marketplace/internal/pkg/errs"
)

var (
	ErrInvalidDate      = errs.Validation("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeOfDay = errs.Validation("invalid time of day, expected HH:MM")
	ErrInvalidWeekday   = errs.Validation("invalid day of week")
)

const dateLayout = "2006-01-02"

// Date is comparable, so it can be used as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DateOf returns the calendar date of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	t = t.In(loc)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d.year == 0 && d.month == 0 && d.day == 0 }
func (d Date) String() string     { return d.Time().Format(dateLayout) }
func (d Date) Weekday() Weekday   { return WeekdayOf(d.Time().Weekday()) }
func (d Date) AddDays(n int) Date { return NewDate(d.year, d.month, d.day+n) }

// Time returns midnight UTC of the date. Used for storage only.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// At returns the instant the given wall-clock time occurs on d in loc.
func (d Date) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, tod.Hour(), tod.Minute(), 0, 0, loc)
}

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

// TimeOfDay is minutes since midnight, in [0, 1440].
// 1440 is allowed so that a window may end at midnight.
type TimeOfDay int

const MinutesPerDay TimeOfDay = 24 * 60

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds are ignored).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	s = strings.TrimSpace(s)
	switch strings.Count(s, ":") {
	case 1:
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, ErrInvalidTimeOfDay
		}
	case 2:
		if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
			return 0, ErrInvalidTimeOfDay
		}
	default:
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(h, m)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Duration since midnight, the shape pgtype.Time stores.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var isoOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func WeekdayOf(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return isoOrder[int(w)-1]
}

// ParseWeekday accepts full names and three letter abbreviations, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, w := range isoOrder {
		if s == string(w) || (len(s) == 3 && strings.HasPrefix(string(w), s)) {
			return w, nil
		}
	}
	return "", ErrInvalidWeekday
}

// ISO returns 1 for Monday through 7 for Sunday, matching PostgreSQL ISODOW.
func (w Weekday) ISO() int {
	for i, d := range isoOrder {
		if d == w {
			return i + 1
		}
	}
	return 0
}

func (w Weekday) String() string { return string(w) }

func (w Weekday) IsValid() bool { return w.ISO() != 0 }
