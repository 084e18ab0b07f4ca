// Package availability computes free appointment start times for one day.
//
// The computation is pure: no I/O, no shared state, safe for concurrent use.
// Only the active part of an appointment blocks the stylist; the exposure
// tail of a new appointment may overlap a later booking and is bounded only
// by the closing time.
package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Candidates генерирует все стартовые моменты дня с шагом Granularity,
// у которых start + TotalDuration не выходит за время закрытия
func Candidates(req Request) ([]domain.CandidateSlot, error) {
	p, err := prepare(req)
	if err != nil {
		return nil, err
	}
	return p.candidates(), nil
}

// FreeSlots возвращает свободные стартовые моменты дня в порядке возрастания
func FreeSlots(req Request) ([]time.Time, error) {
	p, err := prepare(req)
	if err != nil {
		return nil, err
	}

	sameDay := make([]domain.BookedInterval, 0, len(req.Bookings))
	for _, b := range req.Bookings {
		if domain.SameDay(b.Start, p.day, p.day.Location()) {
			sameDay = append(sameDay, b)
		}
	}

	free := make([]time.Time, 0)
	for _, c := range p.candidates() {
		if !overlapsAny(c, sameDay) {
			free = append(free, c.Start)
		}
	}
	return free, nil
}

// IsFree проверяет, что start совпадает с одним из свободных слотов дня
func IsFree(req Request, start time.Time) (bool, error) {
	free, err := FreeSlots(req)
	if err != nil {
		return false, err
	}
	for _, t := range free {
		if t.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

type prepared struct {
	day         time.Time
	openMinute  int
	closeAt     time.Time
	total       time.Duration
	active      time.Duration
	granularity int
	steps       int
}

func prepare(req Request) (prepared, error) {
	if req.Day.IsZero() {
		return prepared{}, fmt.Errorf("%w: day is required", ErrInvalidArgument)
	}
	if req.TotalDuration <= 0 {
		return prepared{}, fmt.Errorf("%w: total duration must be positive, got %d", ErrInvalidArgument, req.TotalDuration)
	}
	if req.ActiveDuration <= 0 {
		return prepared{}, fmt.Errorf("%w: active duration must be positive, got %d", ErrInvalidArgument, req.ActiveDuration)
	}
	if req.Granularity < 0 {
		return prepared{}, fmt.Errorf("%w: granularity must not be negative, got %d", ErrInvalidArgument, req.Granularity)
	}

	granularity := req.Granularity
	if granularity == 0 {
		granularity = domain.DefaultGranularityMinutes
	}

	window := req.Window.WithDefaults()
	openMinute, err := window.Open.Minutes()
	if err != nil {
		return prepared{}, fmt.Errorf("%w: open time: %v", ErrInvalidArgument, err)
	}
	closeMinute, err := window.Close.Minutes()
	if err != nil {
		return prepared{}, fmt.Errorf("%w: close time: %v", ErrInvalidArgument, err)
	}
	if closeMinute <= openMinute {
		return prepared{}, fmt.Errorf("%w: close time %s must be after open time %s", ErrInvalidArgument, window.Close, window.Open)
	}

	active := req.ActiveDuration
	if active > req.TotalDuration {
		active = req.TotalDuration
	}

	y, m, d := req.Day.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, req.Day.Location())

	p := prepared{
		day:         day,
		openMinute:  openMinute,
		granularity: granularity,
		steps:       (closeMinute - openMinute) / granularity,
	}
	p.closeAt = p.wallClock(closeMinute)

	// Услуга длиннее рабочего окна не помещается ни в один слот.
	// Проверка до перевода в time.Duration, иначе большие значения переполняются
	windowMinutes := int(p.closeAt.Sub(p.wallClock(openMinute)) / time.Minute)
	if req.TotalDuration > windowMinutes {
		p.steps = -1
		return p, nil
	}

	p.total = time.Duration(req.TotalDuration) * time.Minute
	p.active = time.Duration(active) * time.Minute
	return p, nil
}

// wallClock строит момент по локальному времени дня, а не через сложение длительностей,
// чтобы в дни перехода на летнее время слоты оставались на "круглых" часах
func (p prepared) wallClock(minuteOfDay int) time.Time {
	y, m, d := p.day.Date()
	return time.Date(y, m, d, 0, minuteOfDay, 0, 0, p.day.Location())
}

func (p prepared) candidates() []domain.CandidateSlot {
	if p.steps < 0 {
		return []domain.CandidateSlot{}
	}
	slots := make([]domain.CandidateSlot, 0, p.steps+1)
	for i := 0; i <= p.steps; i++ {
		start := p.wallClock(p.openMinute + i*p.granularity)
		end := start.Add(p.total)
		if end.After(p.closeAt) {
			break
		}
		slots = append(slots, domain.CandidateSlot{
			Start:     start,
			End:       end,
			ActiveEnd: start.Add(p.active),
		})
	}
	return slots
}

func overlapsAny(c domain.CandidateSlot, bookings []domain.BookedInterval) bool {
	for _, b := range bookings {
		if c.Overlaps(b) {
			return true
		}
	}
	return false
}
