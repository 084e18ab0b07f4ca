package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// loc - часовой пояс салона, в котором трактуются даты и выводится время
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	loc *time.Location,
	logger Logger,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		location:        loc,
		logger:          logger,
	}
}

// Location часовой пояс салона
func (s *Service) Location() *time.Location {
	return s.location
}

// GetDay получает записи за день, отсортированные по времени начала
func (s *Service) GetDay(ctx context.Context, req *models.GetDayRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDay: fetching appointments for date=%s, includeCancelled=%v", req.Date, req.IncludeCancelled)

	day, err := domain.ParseDay(req.Date, s.location)
	if err != nil {
		s.logger.Warn("GetDay: bad date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	from, to := day, domain.NextDay(day)
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		From:             &from,
		To:               &to,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("GetDay: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDay: successfully fetched %d appointments for date=%s", len(appointments), req.Date)
	return models.FromDomainAppointmentList(appointments, s.location), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt, s.location), nil
}

// GetClientAppointments получает историю записей клиента, от новых к старым
// Отменённые записи включаются - это история, а не агенда
func (s *Service) GetClientAppointments(ctx context.Context, clientID uuid.UUID) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%s", clientID)

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		ClientID:         &clientID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%s", len(appointments), clientID)
	return models.FromDomainAppointmentList(appointments, s.location), nil
}

// Update частично обновляет запись
// Конец записи должен быть позже начала, способ оплаты сбрасывается для неоплаченных записей
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%s", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for appointment id=%s", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getAppointment(txCtx, "Update", id)
		if err != nil {
			return err
		}

		if err := applyUpdate(appt, req); err != nil {
			s.logger.Warn("Update: invalid update for appointment id=%s: %v", id, err)
			return err
		}

		if err := s.appointmentRepo.Update(txCtx, appt); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Update: repository error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated appointment id=%s, status=%s, paid=%v", id, updated.Status, updated.Paid)
	return models.FromDomainAppointment(updated, s.location), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

func (s *Service) getAppointment(ctx context.Context, op string, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// applyUpdate переносит изменения из запроса в запись и проверяет результат
func applyUpdate(appt *domain.Appointment, req *models.UpdateAppointmentRequest) error {
	if req.StartTime != nil {
		appt.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		appt.EndTime = *req.EndTime
	}
	if !appt.EndTime.After(appt.StartTime) {
		return ErrInvalidTimeRange
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		appt.Price = req.Price
	}

	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if len(notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if notes == "" {
			appt.Notes = nil
		} else {
			appt.Notes = &notes
		}
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return ErrInvalidStatus
		}
		appt.Status = status
	}

	if req.Paid != nil {
		appt.Paid = *req.Paid
	}

	if req.PaymentMethod != nil {
		if *req.PaymentMethod == "" {
			appt.PaymentMethod = nil
		} else {
			method, err := models.ToDomainPaymentMethod(*req.PaymentMethod)
			if err != nil {
				return ErrInvalidPaymentMethod
			}
			appt.PaymentMethod = &method
		}
	}

	if !appt.Paid {
		appt.PaymentMethod = nil
	}

	return nil
}
