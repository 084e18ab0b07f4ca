package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetDay(ctx context.Context, req *models.GetDayRequest) (*models.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error)
	GetClientAppointments(ctx context.Context, clientID uuid.UUID) (*models.AppointmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
