package create_appointment

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
// Если ClientID/ServiceID не указаны, клиент/услуга создаются по имени в той же транзакции
type Request struct {
	ClientID       uuid.UUID
	NewClientName  string
	ServiceID      uuid.UUID
	NewServiceName string
	Date           string           // YYYY-MM-DD, локальная дата салона
	StartTime      types.TimeString // HH:MM
	TotalMinutes   *int             // Переопределяет длительность услуги
	ActiveMinutes  *int             // Только для новой услуги
	Price          *float64         // nil = цена услуги по умолчанию
	Notes          *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
