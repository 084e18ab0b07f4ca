package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrServiceNameRequired   = errors.New("service name is required")
	ErrServiceNameTooLong    = errors.New("service name is too long")
	ErrInvalidTotalDuration  = errors.New("total duration must be between 1 and 720 minutes")
	ErrInvalidActiveDuration = errors.New("active duration must be positive and not exceed total duration")
	ErrInvalidPrice          = errors.New("price must not be negative")
)

// Service a catalog entry: what the salon offers and how long it takes
type Service struct {
	ID                    uuid.UUID
	Name                  string
	TotalDurationMinutes  int
	ActiveDurationMinutes *int // nil = the whole total duration is active
	DefaultPrice          float64
	IsActive              bool
	CreatedAt             time.Time
}

// EffectiveActiveDuration active duration falling back to the total one
func (s *Service) EffectiveActiveDuration() int {
	if s.ActiveDurationMinutes == nil {
		return s.TotalDurationMinutes
	}
	return *s.ActiveDurationMinutes
}

// HasExposureTail returns true if part of the service does not block the stylist
func (s *Service) HasExposureTail() bool {
	return s.EffectiveActiveDuration() < s.TotalDurationMinutes
}

// Validate enforces catalog invariants: 0 < active <= total, price >= 0
func (s *Service) Validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return ErrServiceNameRequired
	}
	if len(name) > MaxServiceNameLength {
		return ErrServiceNameTooLong
	}
	if s.TotalDurationMinutes <= 0 || s.TotalDurationMinutes > MaxServiceDurationMinutes {
		return ErrInvalidTotalDuration
	}
	if s.ActiveDurationMinutes != nil {
		active := *s.ActiveDurationMinutes
		if active <= 0 || active > s.TotalDurationMinutes {
			return ErrInvalidActiveDuration
		}
	}
	if s.DefaultPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}
