package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPaymentMethod возвращается при некорректном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Request модели

// GetDayRequest запрос на получение записей за день
type GetDayRequest struct {
	Date             string `json:"date"` // "2026-10-15"
	IncludeCancelled bool   `json:"includeCancelled,omitempty"`
}

// UpdateAppointmentRequest частичное обновление записи
// Пустая строка в PaymentMethod сбрасывает способ оплаты
type UpdateAppointmentRequest struct {
	StartTime     *time.Time `json:"startTime,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Paid          *bool      `json:"paid,omitempty"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
}

// IsEmpty возвращает true, если запрос ничего не меняет
func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.StartTime == nil && r.EndTime == nil && r.Price == nil && r.Notes == nil &&
		r.Status == nil && r.Paid == nil && r.PaymentMethod == nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	ClientID      uuid.UUID `json:"clientId"`
	ServiceID     uuid.UUID `json:"serviceId"`
	Date          string    `json:"date"`      // "2026-10-15", локальная дата салона
	StartTime     string    `json:"startTime"` // "10:00"
	EndTime       string    `json:"endTime"`   // "11:30"
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	TotalMinutes  int       `json:"totalMinutes"`
	ActiveMinutes int       `json:"activeMinutes"`
	Price         *float64  `json:"price"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	Paid          bool      `json:"paid"`
	PaymentMethod *string   `json:"paymentMethod"`

	// Денормализованные данные
	ClientName  *string `json:"clientName,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Время выводится в часовом поясе салона
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	start := a.StartTime.In(loc)
	end := a.EndTime.In(loc)

	resp := &AppointmentResponse{
		ID:            a.ID,
		ClientID:      a.ClientID,
		ServiceID:     a.ServiceID,
		Date:          start.Format(domain.DateFormat),
		StartTime:     start.Format(domain.TimeFormat),
		EndTime:       end.Format(domain.TimeFormat),
		Start:         start,
		End:           end,
		TotalMinutes:  a.TotalMinutes(),
		ActiveMinutes: a.ActiveMinutes(),
		Price:         a.Price,
		Notes:         a.Notes,
		Status:        string(a.Status),
		Paid:          a.Paid,
		ClientName:    a.ClientName,
		ServiceName:   a.ServiceName,
		CreatedAt:     a.CreatedAt,
	}

	if a.PaymentMethod != nil {
		pm := string(*a.PaymentMethod)
		resp.PaymentMethod = &pm
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt, loc); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainPaymentMethod конвертирует строку в domain.PaymentMethod с валидацией
func ToDomainPaymentMethod(method string) (domain.PaymentMethod, error) {
	m := domain.PaymentMethod(method)
	if !domain.IsValidPaymentMethod(m) {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}
