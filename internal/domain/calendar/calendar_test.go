//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"service-marketplace/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.AddDays(1).String())
	assert.Equal(t, calendar.Saturday, d.Weekday())

	_, err = calendar.ParseDate("2026-13-01")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestDateOf(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	instant := time.Date(2026, time.October, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, calendar.NewDate(2026, time.October, 14), calendar.DateOf(instant, time.UTC))
	assert.Equal(t, calendar.NewDate(2026, time.October, 15), calendar.DateOf(instant, tokyo))
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "17:30:00", want: "17:30"},
		{in: "24:00", want: "24:00"},
		{in: "24:30", err: true},
		{in: "9", err: true},
		{in: "10:60", err: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := calendar.ParseTimeOfDay(c.in)
			if c.err {
				assert.ErrorIs(t, err, calendar.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestWeekday(t *testing.T) {
	w, err := calendar.ParseWeekday("mon")
	require.NoError(t, err)
	assert.Equal(t, calendar.Monday, w)
	assert.Equal(t, 1, w.ISO())
	assert.Equal(t, 7, calendar.Sunday.ISO())
	assert.Equal(t, calendar.Sunday, calendar.WeekdayOf(time.Sunday))

	_, err = calendar.ParseWeekday("funday")
	assert.ErrorIs(t, err, calendar.ErrInvalidWeekday)
}
