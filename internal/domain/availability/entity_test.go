//go:build unit

package availability_test

import (
	"testing"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(t *testing.T, s string) calendar.TimeOfDay {
	t.Helper()
	v, err := calendar.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	provider := uuid.New()

	_, err := availability.New(provider, calendar.Monday, tod(t, "10:00"), tod(t, "10:00"))
	assert.ErrorIs(t, err, availability.ErrInvalidWindow)

	_, err = availability.New(provider, calendar.Monday, tod(t, "11:00"), tod(t, "10:00"))
	assert.ErrorIs(t, err, availability.ErrInvalidWindow)

	_, err = availability.New(provider, calendar.Weekday("HOLIDAY"), tod(t, "09:00"), tod(t, "10:00"))
	assert.ErrorIs(t, err, calendar.ErrInvalidWeekday)
}

func TestCheckNoOverlap(t *testing.T) {
	provider := uuid.New()
	mk := func(day calendar.Weekday, s, e string) *availability.Availability {
		a, err := availability.New(provider, day, tod(t, s), tod(t, e))
		require.NoError(t, err)
		return a
	}
	existing := []*availability.Availability{mk(calendar.Monday, "09:00", "12:00")}

	cases := []struct {
		name      string
		candidate *availability.Availability
		overlaps  bool
	}{
		{name: "内包は重複", candidate: mk(calendar.Monday, "10:00", "11:00"), overlaps: true},
		{name: "一部重複", candidate: mk(calendar.Monday, "11:30", "13:00"), overlaps: true},
		{name: "端点のみ接するのはOK", candidate: mk(calendar.Monday, "12:00", "13:00")},
		{name: "前方で接するのはOK", candidate: mk(calendar.Monday, "08:00", "09:00")},
		{name: "別曜日はOK", candidate: mk(calendar.Tuesday, "09:00", "12:00")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := availability.CheckNoOverlap(c.candidate, existing)
			if c.overlaps {
				assert.ErrorIs(t, err, availability.ErrOverlappingWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
