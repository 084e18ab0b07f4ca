package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func TestService_Validate(t *testing.T) {
	valid := func() Service {
		return Service{Name: "Tinte", TotalDurationMinutes: 90, ActiveDurationMinutes: ptr.Ptr(30), DefaultPrice: 45}
	}

	tests := []struct {
		name   string
		mutate func(*Service)
		errIs  error
	}{
		{name: "valid service", mutate: func(*Service) {}},
		{name: "nil active duration", mutate: func(s *Service) { s.ActiveDurationMinutes = nil }},
		{name: "active equals total", mutate: func(s *Service) { s.ActiveDurationMinutes = ptr.Ptr(90) }},
		{name: "blank name", mutate: func(s *Service) { s.Name = "  " }, errIs: ErrServiceNameRequired},
		{name: "zero total", mutate: func(s *Service) { s.TotalDurationMinutes = 0 }, errIs: ErrInvalidTotalDuration},
		{name: "active above total", mutate: func(s *Service) { s.ActiveDurationMinutes = ptr.Ptr(91) }, errIs: ErrInvalidActiveDuration},
		{name: "zero active", mutate: func(s *Service) { s.ActiveDurationMinutes = ptr.Ptr(0) }, errIs: ErrInvalidActiveDuration},
		{name: "negative price", mutate: func(s *Service) { s.DefaultPrice = -1 }, errIs: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := s.Validate()
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestService_EffectiveActiveDuration(t *testing.T) {
	s := Service{TotalDurationMinutes: 60}
	assert.Equal(t, 60, s.EffectiveActiveDuration())
	assert.False(t, s.HasExposureTail())

	s.ActiveDurationMinutes = ptr.Ptr(20)
	assert.Equal(t, 20, s.EffectiveActiveDuration())
	assert.True(t, s.HasExposureTail())
}
