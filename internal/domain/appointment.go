package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusReserved  AppointmentStatus = "reserved"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// PaymentMethod how an appointment was paid
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentBizum PaymentMethod = "bizum"
)

// PaymentMethods список поддерживаемых способов оплаты (порядок для отчётов)
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentBizum}

// Appointment represents a booked visit of a client for a service
type Appointment struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ServiceID     uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Price         *float64
	Notes         *string
	Status        AppointmentStatus
	Paid          bool
	PaymentMethod *PaymentMethod

	// Joined data (read-only)
	ClientName            *string
	ServiceName           *string
	ServiceActiveDuration *int // nil = unknown, blocks the whole appointment

	CreatedAt time.Time
}

// IsCancelled returns true if the appointment no longer blocks the agenda
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// TotalMinutes full length of the appointment, at least one minute
func (a *Appointment) TotalMinutes() int {
	minutes := int(math.Round(a.EndTime.Sub(a.StartTime).Minutes()))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ActiveMinutes blocking part of the appointment.
// Falls back to the total length when the service has no active duration,
// and never exceeds the total length.
func (a *Appointment) ActiveMinutes() int {
	total := a.TotalMinutes()
	if a.ServiceActiveDuration == nil {
		return total
	}
	active := *a.ServiceActiveDuration
	if active > total {
		return total
	}
	if active < 1 {
		return 1
	}
	return active
}

// BookedInterval returns the resource-blocking interval of the appointment
func (a *Appointment) BookedInterval() BookedInterval {
	return BookedInterval{
		Start:     a.StartTime,
		ActiveEnd: a.StartTime.Add(time.Duration(a.ActiveMinutes()) * time.Minute),
	}
}

// RevenueAmount price counted by the cash register, 0 when not set
func (a *Appointment) RevenueAmount() float64 {
	if a.Price == nil {
		return 0
	}
	return *a.Price
}

// IsValidStatus checks that s is a known appointment status
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusReserved, StatusDone, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsValidPaymentMethod checks that p is a known payment method
func IsValidPaymentMethod(p PaymentMethod) bool {
	for _, m := range PaymentMethods {
		if m == p {
			return true
		}
	}
	return false
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	From             *time.Time // начало периода включительно
	To               *time.Time // конец периода НЕ включительно
	ClientID         *uuid.UUID
	IncludeCancelled bool
	OnlyPaid         bool
}

// BookedIntervals blocking intervals of the appointments that still hold the agenda
func BookedIntervals(appointments []*Appointment) []BookedInterval {
	intervals := make([]BookedInterval, 0, len(appointments))
	for _, a := range appointments {
		if a == nil || a.IsCancelled() {
			continue
		}
		intervals = append(intervals, a.BookedInterval())
	}
	return intervals
}
