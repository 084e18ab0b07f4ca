package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	schedule        domain.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	if schedule.Location == nil {
		schedule.Location = time.Local
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи
// Проверка слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%s, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем дату в часовом поясе салона
	day, err := domain.ParseDay(req.Date, uc.schedule.Location)
	if err != nil {
		uc.logger.Warn("CreateAppointment: bad date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	if isDateInPast(day, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date)
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date)
	}

	start, err := req.StartTime.On(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем рабочий день
	window, open := uc.schedule.WindowFor(day)
	if !open {
		uc.logger.Warn("CreateAppointment: salon is closed on %s", req.Date)
		return nil, ErrSalonClosed
	}

	// 4. Получаем клиента (или готовим нового)
	var newClient *domain.Client
	if req.ClientID != uuid.Nil {
		if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	} else {
		newClient = &domain.Client{FullName: strings.TrimSpace(req.NewClientName)}
	}

	// 5. Получаем услугу (или готовим новую)
	service, isNewService, err := uc.resolveService(ctx, req)
	if err != nil {
		return nil, err
	}

	total := service.TotalDurationMinutes
	if req.TotalMinutes != nil {
		total = *req.TotalMinutes
	}
	active := service.EffectiveActiveDuration()
	if active > total {
		active = total
	}

	calcReq := availability.Request{
		Day:            day,
		TotalDuration:  total,
		ActiveDuration: active,
		Window:         window,
		Granularity:    uc.schedule.Granularity(),
	}

	// 6. Время должно совпадать с одним из слотов дня
	if err := checkOnGrid(calcReq, start); err != nil {
		uc.logger.Warn("CreateAppointment: %s %s is not a valid start: %v", req.Date, req.StartTime, err)
		return nil, err
	}

	price := req.Price
	if price == nil {
		p := service.DefaultPrice
		price = &p
	}

	var notes *string
	if req.Notes != nil {
		if n := strings.TrimSpace(*req.Notes); n != "" {
			notes = &n
		}
	}

	var result *domain.Appointment

	// 7. Повторная проверка свободного времени и вставка в сериализуемой транзакции
	// Ошибки БД оборачиваются через %w, чтобы txmanager видел 40001 и повторял попытку
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		from, to := day, domain.NextDay(day)
		appointments, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{From: &from, To: &to})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		calcReq.Bookings = domain.BookedIntervals(appointments)
		free, err := availability.IsFree(calcReq, start)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !free {
			uc.logger.Warn("CreateAppointment: slot %s %s is taken", req.Date, req.StartTime)
			return ErrSlotNotAvailable
		}

		clientID := req.ClientID
		if newClient != nil {
			created, err := uc.clientRepo.Create(txCtx, newClient)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to create client %q: %v", newClient.FullName, err)
				return fmt.Errorf("%w: failed to create client: %w", ErrInternal, err)
			}
			clientID = created.ID
		}

		serviceID := service.ID
		if isNewService {
			created, err := uc.serviceRepo.Create(txCtx, service)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to create service %q: %v", service.Name, err)
				return fmt.Errorf("%w: failed to create service: %w", ErrInternal, err)
			}
			serviceID = created.ID
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  clientID,
			ServiceID: serviceID,
			StartTime: start,
			EndTime:   start.Add(time.Duration(total) * time.Minute),
			Price:     price,
			Notes:     notes,
			Status:    domain.StatusReserved,
			Paid:      false,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if newClient != nil {
		result.ClientName = &newClient.FullName
	}
	result.ServiceName = &service.Name
	result.ServiceActiveDuration = service.ActiveDurationMinutes

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{Appointment: result}, nil
}

// resolveService загружает услугу по ID либо собирает новую по имени
// Новая услуга получает длительность из запроса или значение по умолчанию
func (uc *UseCase) resolveService(ctx context.Context, req *Request) (*domain.Service, bool, error) {
	if req.ServiceID == uuid.Nil {
		total := domain.DefaultServiceDurationMinutes
		if req.TotalMinutes != nil {
			total = *req.TotalMinutes
		}
		active := total
		if req.ActiveMinutes != nil {
			active = *req.ActiveMinutes
		}
		svc := &domain.Service{
			Name:                  strings.TrimSpace(req.NewServiceName),
			TotalDurationMinutes:  total,
			ActiveDurationMinutes: &active,
			DefaultPrice:          domain.DefaultServicePrice,
			IsActive:              true,
		}
		if err := svc.Validate(); err != nil {
			uc.logger.Warn("CreateAppointment: invalid new service %q: %v", req.NewServiceName, err)
			return nil, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return svc, true, nil
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, false, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, false, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%s is not active", req.ServiceID)
		return nil, false, ErrServiceInactive
	}
	return service, false, nil
}

// checkOnGrid проверяет, что start - одна из допустимых стартовых точек дня
func checkOnGrid(req availability.Request, start time.Time) error {
	candidates, err := availability.Candidates(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, c := range candidates {
		if c.Start.Equal(start) {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}
