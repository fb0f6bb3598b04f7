package request

import (
	"service-marketplace/internal/domain/calendar"
)

type SetAvailabilityRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type Window struct {
	Day   calendar.Weekday
	Start calendar.TimeOfDay
	End   calendar.TimeOfDay
}

func (r SetAvailabilityRequest) ToDomain() (Window, error) {
	day, err := calendar.ParseWeekday(r.DayOfWeek)
	if err != nil {
		return Window{}, err
	}
	start, err := calendar.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return Window{}, err
	}
	end, err := calendar.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return Window{}, err
	}
	return Window{Day: day, Start: start, End: end}, nil
}
