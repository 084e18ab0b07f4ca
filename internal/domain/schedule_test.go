package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_WindowFor(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	schedule := Schedule{
		Location:       madrid,
		ClosedWeekdays: []time.Weekday{time.Sunday},
		Holidays:       []Holiday{{Date: "2026-10-12", Name: "Fiesta Nacional de España"}},
	}

	t.Run("regular day uses default hours", func(t *testing.T) {
		day := time.Date(2026, 10, 14, 0, 0, 0, 0, madrid)
		window, open := schedule.WindowFor(day)

		assert.True(t, open)
		assert.Equal(t, DefaultOpenTime, window.Open)
		assert.Equal(t, DefaultCloseTime, window.Close)
	})

	t.Run("holiday is closed", func(t *testing.T) {
		_, open := schedule.WindowFor(time.Date(2026, 10, 12, 0, 0, 0, 0, madrid))
		assert.False(t, open)
	})

	t.Run("closed weekday", func(t *testing.T) {
		_, open := schedule.WindowFor(time.Date(2026, 10, 18, 0, 0, 0, 0, madrid)) // Sunday
		assert.False(t, open)
	})
}

func TestSameDay_UsesLocalCalendar(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 00:30 в Мадриде = 22:30 UTC предыдущего дня
	lateNight := time.Date(2026, 7, 1, 22, 30, 0, 0, time.UTC)
	day := time.Date(2026, 7, 2, 0, 0, 0, 0, madrid)

	assert.True(t, SameDay(lateNight, day, madrid))
	assert.False(t, SameDay(lateNight, day, time.UTC))
}

func TestParseDay(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	day, err := ParseDay("2026-03-29", madrid)
	require.NoError(t, err)
	assert.Equal(t, madrid, day.Location())
	assert.Equal(t, 0, day.Hour())

	assert.Equal(t, time.Date(2026, 3, 30, 0, 0, 0, 0, madrid), NextDay(day))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, madrid), StartOfMonth(day))
}
