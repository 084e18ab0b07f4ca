package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type appointmentRepoMock struct {
	mock.Mock
}

func (m *appointmentRepoMock) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type serviceRepoMock struct {
	mock.Mock
}

func (m *serviceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) ObserveSlotComputation(outcome string, slots int) {
	m.Called(outcome, slots)
}

func newSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return domain.Schedule{
		Location:       loc,
		Open:           "09:00",
		Close:          "20:00",
		ClosedWeekdays: []time.Weekday{time.Sunday},
		Holidays:       []domain.Holiday{{Date: "2026-12-25", Name: "Navidad"}},
	}
}

func formatSlots(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Format(domain.TimeFormat)
	}
	return out
}

func TestExecute_UsesServiceDurationsAndDayAppointments(t *testing.T) {
	schedule := newSchedule(t)
	appts := &appointmentRepoMock{}
	services := &serviceRepoMock{}
	m := &metricsMock{}

	serviceID := uuid.New()
	services.On("GetByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:                    serviceID,
		Name:                  "Tinte",
		TotalDurationMinutes:  90,
		ActiveDurationMinutes: ptr.Ptr(30),
	}, nil)

	day := time.Date(2026, 10, 14, 0, 0, 0, 0, schedule.Location)
	next := day.AddDate(0, 0, 1)
	booked := time.Date(2026, 10, 14, 10, 0, 0, 0, schedule.Location)
	appts.On("List", mock.Anything, mock.MatchedBy(func(f domain.AppointmentsFilter) bool {
		return f.From.Equal(day) && f.To.Equal(next) && !f.IncludeCancelled
	})).Return([]*domain.Appointment{
		// corte de 30 minutos sin tiempo de exposición
		{StartTime: booked, EndTime: booked.Add(30 * time.Minute), Status: domain.StatusReserved},
	}, nil)
	m.On("ObserveSlotComputation", metrics.OutcomeOK, mock.AnythingOfType("int")).Return()

	uc := NewUseCase(appts, services, schedule, m, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-10-14", ServiceID: &serviceID})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Equal(t, 90, resp.TotalMinutes)
	assert.Equal(t, 30, resp.ActiveMinutes)

	got := formatSlots(resp.Slots)
	assert.Equal(t, "09:00", got[0])
	assert.Contains(t, got, "09:30")
	assert.NotContains(t, got, "09:45")
	assert.NotContains(t, got, "10:15")
	assert.Contains(t, got, "10:30")
	assert.Equal(t, "18:30", got[len(got)-1])

	appts.AssertExpectations(t)
	services.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestExecute_ExplicitMinutesWithoutService(t *testing.T) {
	appts := &appointmentRepoMock{}
	appts.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)

	uc := NewUseCase(appts, &serviceRepoMock{}, newSchedule(t), nil, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-10-14", TotalMinutes: ptr.Ptr(30)})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.ActiveMinutes)
	assert.Len(t, resp.Slots, 43)
}

func TestExecute_ActiveMinutesIgnoredForCatalogService(t *testing.T) {
	appts := &appointmentRepoMock{}
	services := &serviceRepoMock{}
	serviceID := uuid.New()

	services.On("GetByID", mock.Anything, serviceID).Return(&domain.Service{
		ID: serviceID, TotalDurationMinutes: 90, ActiveDurationMinutes: ptr.Ptr(30),
	}, nil)
	appts.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)

	uc := NewUseCase(appts, services, newSchedule(t), nil, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{
		Date:          "2026-10-14",
		ServiceID:     &serviceID,
		TotalMinutes:  ptr.Ptr(60),
		ActiveMinutes: ptr.Ptr(15),
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.TotalMinutes)
	assert.Equal(t, 30, resp.ActiveMinutes)
}

func TestExecute_ClosedDays(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		wantHoliday *string
	}{
		{name: "closed weekday", date: "2026-10-18"},
		{name: "holiday", date: "2026-12-25", wantHoliday: ptr.Ptr("Navidad")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appts := &appointmentRepoMock{}
			m := &metricsMock{}
			m.On("ObserveSlotComputation", metrics.OutcomeClosed, 0).Return()

			uc := NewUseCase(appts, &serviceRepoMock{}, newSchedule(t), m, logger.NewNop())
			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date, TotalMinutes: ptr.Ptr(30)})
			require.NoError(t, err)

			assert.True(t, resp.Closed)
			assert.Empty(t, resp.Slots)
			assert.Equal(t, tt.wantHoliday, resp.HolidayName)
			appts.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			m.AssertExpectations(t)
		})
	}
}

func TestExecute_FullyBookedDayIsNotAnError(t *testing.T) {
	schedule := newSchedule(t)
	open := time.Date(2026, 10, 14, 9, 0, 0, 0, schedule.Location)

	appts := &appointmentRepoMock{}
	appts.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{
		{StartTime: open, EndTime: open.Add(11 * time.Hour), Status: domain.StatusReserved},
	}, nil)
	m := &metricsMock{}
	m.On("ObserveSlotComputation", metrics.OutcomeEmpty, 0).Return()

	uc := NewUseCase(appts, &serviceRepoMock{}, schedule, m, logger.NewNop())
	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-10-14", TotalMinutes: ptr.Ptr(30)})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	m.AssertExpectations(t)
}

func TestExecute_Errors(t *testing.T) {
	serviceID := uuid.New()

	tests := []struct {
		name    string
		req     *Request
		setup   func(a *appointmentRepoMock, s *serviceRepoMock)
		wantErr error
	}{
		{
			name:    "missing date",
			req:     &Request{TotalMinutes: ptr.Ptr(30)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no durations",
			req:     &Request{Date: "2026-10-14"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero total",
			req:     &Request{Date: "2026-10-14", TotalMinutes: ptr.Ptr(0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative active",
			req:     &Request{Date: "2026-10-14", TotalMinutes: ptr.Ptr(30), ActiveMinutes: ptr.Ptr(-1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed date",
			req:     &Request{Date: "14/10/2026", TotalMinutes: ptr.Ptr(30)},
			wantErr: ErrInvalidDate,
		},
		{
			name: "unknown service",
			req:  &Request{Date: "2026-10-14", ServiceID: &serviceID},
			setup: func(_ *appointmentRepoMock, s *serviceRepoMock) {
				s.On("GetByID", mock.Anything, serviceID).Return(nil, serviceRepo.ErrServiceNotFound)
			},
			wantErr: ErrServiceNotFound,
		},
		{
			name: "service lookup failure",
			req:  &Request{Date: "2026-10-14", ServiceID: &serviceID},
			setup: func(_ *appointmentRepoMock, s *serviceRepoMock) {
				s.On("GetByID", mock.Anything, serviceID).Return(nil, errors.New("connection reset"))
			},
			wantErr: ErrInternal,
		},
		{
			name: "appointments lookup failure",
			req:  &Request{Date: "2026-10-14", TotalMinutes: ptr.Ptr(30)},
			setup: func(a *appointmentRepoMock, _ *serviceRepoMock) {
				a.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
			},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appts := &appointmentRepoMock{}
			services := &serviceRepoMock{}
			if tt.setup != nil {
				tt.setup(appts, services)
			}

			uc := NewUseCase(appts, services, newSchedule(t), nil, logger.NewNop())
			resp, err := uc.Execute(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}
