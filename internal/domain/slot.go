package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BookedInterval the resource-blocking part of an existing appointment.
type BookedInterval struct {
	Start     time.Time
	ActiveEnd time.Time
}

// CandidateSlot a prospective start time for a new appointment.
type CandidateSlot struct {
	Start     time.Time
	End       time.Time // Start + total duration
	ActiveEnd time.Time // Start + active duration
}

// Overlaps reports whether the active windows intersect.
// Half-open intervals: touching endpoints do not overlap.
func (c CandidateSlot) Overlaps(b BookedInterval) bool {
	return c.Start.Before(b.ActiveEnd) && c.ActiveEnd.After(b.Start)
}

// BusinessWindow allowed start/end bounds for one day.
// Zero Open/Close mean the default 09:00-20:00.
type BusinessWindow struct {
	Day   time.Time
	Open  types.TimeString
	Close types.TimeString
}

// WithDefaults fills unset bounds with DefaultOpenTime/DefaultCloseTime.
func (w BusinessWindow) WithDefaults() BusinessWindow {
	if w.Open.IsZero() {
		w.Open = DefaultOpenTime
	}
	if w.Close.IsZero() {
		w.Close = DefaultCloseTime
	}
	return w
}
