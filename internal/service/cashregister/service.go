package cashregister

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Service сервис отчётов кассы
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса кассы
func NewService(appointmentRepo AppointmentRepository, loc *time.Location, logger Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        loc,
		logger:          logger,
	}
}

// GetReport строит отчёт кассы за дату и её месяц
func (s *Service) GetReport(ctx context.Context, date string) (*Report, error) {
	s.logger.Info("GetReport: building cash register report for date=%s", date)

	// 1. Разбираем дату в часовом поясе салона
	day, err := domain.ParseDay(date, s.location)
	if err != nil {
		s.logger.Warn("GetReport: bad date %q: %v", date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	// 2. Загружаем оплаченные записи месяца
	from := domain.StartOfMonth(day)
	to := from.AddDate(0, 1, 0)
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		From:     &from,
		To:       &to,
		OnlyPaid: true,
	})
	if err != nil {
		s.logger.Error("GetReport: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetReport - repository error: %v", ErrInternal, err)
	}

	// 3. Агрегируем
	report := Summarize(appointments, day)

	s.logger.Info("GetReport: date=%s day total=%.2f, month total=%.2f", date, report.DayTotals.Total, report.MonthTotals.Total)
	return &report, nil
}
