package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Holiday a day the salon is closed.
type Holiday struct {
	Date string // YYYY-MM-DD
	Name string
}

// Schedule weekly opening rules of the salon.
type Schedule struct {
	Location           *time.Location
	Open               types.TimeString
	Close              types.TimeString
	GranularityMinutes int
	ClosedWeekdays     []time.Weekday
	Holidays           []Holiday
}

// WindowFor returns the business window for day and whether the salon is open.
func (s Schedule) WindowFor(day time.Time) (BusinessWindow, bool) {
	window := BusinessWindow{Day: day, Open: s.Open, Close: s.Close}.WithDefaults()

	if _, ok := s.HolidayOn(day); ok {
		return window, false
	}
	for _, wd := range s.ClosedWeekdays {
		if day.Weekday() == wd {
			return window, false
		}
	}
	return window, true
}

// HolidayOn returns the holiday falling on day, if any.
func (s Schedule) HolidayOn(day time.Time) (Holiday, bool) {
	key := day.Format(DateFormat)
	for _, h := range s.Holidays {
		if h.Date == key {
			return h, true
		}
	}
	return Holiday{}, false
}

// Granularity returns the configured step or the default one.
func (s Schedule) Granularity() int {
	if s.GranularityMinutes <= 0 {
		return DefaultGranularityMinutes
	}
	return s.GranularityMinutes
}
