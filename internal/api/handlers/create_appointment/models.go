package create_appointment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
// Вместо clientId/serviceId можно передать имя нового клиента/услуги
type CreateAppointmentRequest struct {
	ClientID       string   `json:"clientId,omitempty"`
	NewClientName  string   `json:"newClientName,omitempty"`
	ServiceID      string   `json:"serviceId,omitempty"`
	NewServiceName string   `json:"newServiceName,omitempty"`
	Date           string   `json:"date"`      // "2026-10-15"
	StartTime      string   `json:"startTime"` // "10:30"
	TotalMinutes   *int     `json:"totalMinutes,omitempty"`
	ActiveMinutes  *int     `json:"activeMinutes,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	clientID, err := optionalUUID(r.ClientID)
	if err != nil {
		return nil, fmt.Errorf("clientId: %w", err)
	}
	serviceID, err := optionalUUID(r.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("serviceId: %w", err)
	}

	return &createAppointment.Request{
		ClientID:       clientID,
		NewClientName:  r.NewClientName,
		ServiceID:      serviceID,
		NewServiceName: r.NewServiceName,
		Date:           strings.TrimSpace(r.Date),
		StartTime:      types.TimeString(strings.TrimSpace(r.StartTime)),
		TotalMinutes:   r.TotalMinutes,
		ActiveMinutes:  r.ActiveMinutes,
		Price:          r.Price,
		Notes:          r.Notes,
	}, nil
}

func optionalUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}
