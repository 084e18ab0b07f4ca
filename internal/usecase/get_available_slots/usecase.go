package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// UseCase use case для получения свободных слотов на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	schedule        domain.Schedule
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	schedule domain.Schedule,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if schedule.Location == nil {
		schedule.Location = time.Local
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		schedule:        schedule,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%v", req.Date, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		uc.observe(metrics.OutcomeInvalid, 0)
		return nil, err
	}

	// 2. Дата всегда трактуется в часовом поясе салона
	day, err := domain.ParseDay(req.Date, uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: bad date %q: %v", req.Date, err)
		uc.observe(metrics.OutcomeInvalid, 0)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 3. Определяем длительности
	total, active, err := uc.resolveDurations(ctx, req)
	if err != nil {
		return nil, err
	}

	window, open := uc.schedule.WindowFor(day)
	resp := &Response{
		Date:          day,
		Open:          window.Open,
		Close:         window.Close,
		TotalMinutes:  total,
		ActiveMinutes: active,
		Slots:         []time.Time{},
	}

	// 4. Выходной или праздник - пустой список без ошибки
	if !open {
		resp.Closed = true
		if h, ok := uc.schedule.HolidayOn(day); ok {
			resp.HolidayName = &h.Name
		}
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date)
		uc.observe(metrics.OutcomeClosed, 0)
		return resp, nil
	}

	// 5. Получаем записи дня (без отменённых)
	from, to := day, domain.NextDay(day)
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{From: &from, To: &to})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Считаем свободные слоты
	slots, err := availability.FreeSlots(availability.Request{
		Day:            day,
		Bookings:       domain.BookedIntervals(appointments),
		TotalDuration:  total,
		ActiveDuration: active,
		Window:         window,
		Granularity:    uc.schedule.Granularity(),
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidArgument) {
			uc.logger.Warn("GetAvailableSlots: invalid calculation input: %v", err)
			uc.observe(metrics.OutcomeInvalid, 0)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to calculate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate slots: %v", ErrInternal, err)
	}
	resp.Slots = slots

	if len(slots) == 0 {
		uc.observe(metrics.OutcomeEmpty, 0)
	} else {
		uc.observe(metrics.OutcomeOK, len(slots))
	}

	uc.logger.Info("GetAvailableSlots: %d free slots on %s (total=%d, active=%d, booked=%d)",
		len(slots), req.Date, total, active, len(appointments))

	return resp, nil
}

// resolveDurations берёт длительности из услуги; totalMinutes из запроса имеет приоритет,
// activeMinutes учитывается только без услуги
func (uc *UseCase) resolveDurations(ctx context.Context, req *Request) (int, int, error) {
	var total, active int

	if req.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
				return 0, 0, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
			return 0, 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		total = svc.TotalDurationMinutes
		active = svc.EffectiveActiveDuration()
	}

	if req.TotalMinutes != nil {
		total = *req.TotalMinutes
		if req.ServiceID == nil {
			active = total
		}
	}
	// Активная длительность услуги из каталога не переопределяется:
	// блокирующий интервал записи строится из неё же
	if req.ActiveMinutes != nil && req.ServiceID == nil {
		active = *req.ActiveMinutes
	}

	return total, active, nil
}

func (uc *UseCase) observe(outcome string, slots int) {
	if uc.metrics != nil {
		uc.metrics.ObserveSlotComputation(outcome, slots)
	}
}
