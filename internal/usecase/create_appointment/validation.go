package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil && strings.TrimSpace(req.NewClientName) == "" {
		return fmt.Errorf("%w: clientId or newClientName is required", ErrInvalidInput)
	}

	if len([]rune(strings.TrimSpace(req.NewClientName))) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ServiceID == uuid.Nil && strings.TrimSpace(req.NewServiceName) == "" {
		return fmt.Errorf("%w: serviceId or newServiceName is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.TotalMinutes != nil && (*req.TotalMinutes <= 0 || *req.TotalMinutes > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: totalMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if req.ActiveMinutes != nil && *req.ActiveMinutes <= 0 {
		return fmt.Errorf("%w: activeMinutes must be positive", ErrInvalidInput)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(strings.TrimSpace(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isDateInPast проверяет, что день раньше сегодняшнего (в часовом поясе дня)
func isDateInPast(day, now time.Time) bool {
	return day.Before(domain.StartOfDay(now, day.Location()))
}
