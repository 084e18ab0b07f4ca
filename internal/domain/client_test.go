package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneES(t *testing.T) {
	tests := map[string]string{
		"600 11 22 33":      "34600112233",
		"+34 600-11-22-33":  "34600112233",
		"0034600112233":     "0034600112233",
		"(91) 555 12 34":    "34915551234",
		"":                  "",
		"sin teléfono":      "",
		"+44 20 7946 0958":  "442079460958",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizePhoneES(in), "input %q", in)
	}
}
