package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID == nil && req.TotalMinutes == nil {
		return fmt.Errorf("%w: serviceId or totalMinutes is required", ErrInvalidInput)
	}

	if req.TotalMinutes != nil && (*req.TotalMinutes <= 0 || *req.TotalMinutes > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: totalMinutes must be between 1 and %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if req.ActiveMinutes != nil && *req.ActiveMinutes <= 0 {
		return fmt.Errorf("%w: activeMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
