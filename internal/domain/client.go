package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// SpainCountryCode prefix added to national 9-digit numbers
const SpainCountryCode = "34"

// Client a person in the salon directory
type Client struct {
	ID        uuid.UUID
	FullName  string
	Phone     *string
	PhoneNorm *string // digits only, with country code; unique per directory
	Instagram *string
	Notes     *string
	CreatedAt time.Time
}

// NormalizePhoneES keeps digits only and prefixes 9-digit Spanish numbers with 34.
// Returns "" when the input has no digits.
func NormalizePhoneES(input string) string {
	var b strings.Builder
	for _, r := range input {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if len(digits) == 9 {
		return SpainCountryCode + digits
	}
	return digits
}
