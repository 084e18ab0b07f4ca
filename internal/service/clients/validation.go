package clients

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateClient проверяет уже нормализованного клиента
func validateClient(c *domain.Client) error {
	if c.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(c.FullName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: fullName must not exceed %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if c.Phone != nil && c.PhoneNorm == nil {
		return fmt.Errorf("%w: phone must contain digits", ErrInvalidInput)
	}

	if c.Instagram != nil && utf8.RuneCountInString(*c.Instagram) > domain.MaxInstagramLength {
		return fmt.Errorf("%w: instagram must not exceed %d characters", ErrInvalidInput, domain.MaxInstagramLength)
	}

	if c.Notes != nil && utf8.RuneCountInString(*c.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
