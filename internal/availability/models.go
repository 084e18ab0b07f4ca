package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request входные данные расчёта свободных слотов на один день
type Request struct {
	// Day календарный день. Используются только год/месяц/число
	// в Day.Location() - это локальное время салона
	Day time.Time

	// Bookings существующие записи. Учитываются только те, что начинаются в Day
	// (по локальной дате, не по UTC)
	Bookings []domain.BookedInterval

	TotalDuration  int // минуты, > 0
	ActiveDuration int // минуты, > 0, приводится к [1, TotalDuration]

	Window      domain.BusinessWindow // пустые Open/Close = 09:00-20:00
	Granularity int                   // шаг в минутах, 0 = 15
}
