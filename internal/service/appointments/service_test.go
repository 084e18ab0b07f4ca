package appointments

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
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type appointmentRepoMock struct {
	mock.Mock
}

func (m *appointmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *appointmentRepoMock) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *appointmentRepoMock) Update(ctx context.Context, appt *domain.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *appointmentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return loc
}

func paidByCard(t *testing.T) *domain.Appointment {
	loc := madrid(t)
	start := time.Date(2026, 10, 15, 10, 0, 0, 0, loc)
	card := domain.PaymentCard
	return &domain.Appointment{
		ID:            uuid.MustParse("5b1f3d2e-8a61-4c0e-9a57-2f7e0c000010"),
		StartTime:     start,
		EndTime:       start.Add(90 * time.Minute),
		Price:         ptr.Ptr(45.0),
		Status:        domain.StatusDone,
		Paid:          true,
		PaymentMethod: &card,
		ClientName:    ptr.Ptr("Lucía"),
		ServiceName:   ptr.Ptr("Tinte"),
	}
}

func TestGetDay_QueriesLocalDay(t *testing.T) {
	loc := madrid(t)
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, loc, logger.NewNop())

	from := time.Date(2026, 10, 25, 0, 0, 0, 0, loc)
	to := time.Date(2026, 10, 26, 0, 0, 0, 0, loc)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.AppointmentsFilter) bool {
		return f.From.Equal(from) && f.To.Equal(to) && !f.IncludeCancelled && f.ClientID == nil
	})).Return([]*domain.Appointment{paidByCard(t)}, nil)

	resp, err := svc.GetDay(context.Background(), &models.GetDayRequest{Date: "2026-10-25"})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	got := resp.Appointments[0]
	assert.Equal(t, "2026-10-15", got.Date)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, "11:30", got.EndTime)
	assert.Equal(t, 90, got.TotalMinutes)
	assert.Equal(t, "card", *got.PaymentMethod)
	repo.AssertExpectations(t)
}

func TestGetDay_Errors(t *testing.T) {
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, madrid(t), logger.NewNop())

	_, err := svc.GetDay(context.Background(), &models.GetDayRequest{Date: "15/10/2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	_, err = svc.GetDay(context.Background(), &models.GetDayRequest{Date: "2026-10-15"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetDay_EmptyList(t *testing.T) {
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, madrid(t), logger.NewNop())

	repo.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := svc.GetDay(context.Background(), &models.GetDayRequest{Date: "2026-10-15"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointments)
	assert.Empty(t, resp.Appointments)
}

func TestGetClientAppointments_IncludesCancelled(t *testing.T) {
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, madrid(t), logger.NewNop())
	clientID := uuid.New()

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.AppointmentsFilter) bool {
		return f.ClientID != nil && *f.ClientID == clientID && f.IncludeCancelled && f.From == nil
	})).Return([]*domain.Appointment{}, nil)

	resp, err := svc.GetClientAppointments(context.Background(), clientID)
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
	repo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, madrid(t), logger.NewNop())
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdate_ClearsPaymentMethodWhenUnpaid(t *testing.T) {
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, madrid(t), logger.NewNop())
	appt := paidByCard(t)

	repo.On("GetByID", mock.Anything, appt.ID).Return(appt, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
		return !a.Paid && a.PaymentMethod == nil
	})).Return(nil)

	resp, err := svc.Update(context.Background(), appt.ID, &models.UpdateAppointmentRequest{Paid: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, resp.Paid)
	assert.Nil(t, resp.PaymentMethod)
	repo.AssertExpectations(t)
}

func TestUpdate_ChangesFields(t *testing.T) {
	loc := madrid(t)
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, loc, logger.NewNop())
	appt := paidByCard(t)

	newStart := time.Date(2026, 10, 15, 12, 0, 0, 0, loc)
	newEnd := newStart.Add(45 * time.Minute)

	repo.On("GetByID", mock.Anything, appt.ID).Return(appt, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Update(context.Background(), appt.ID, &models.UpdateAppointmentRequest{
		StartTime:     &newStart,
		EndTime:       &newEnd,
		Price:         ptr.Ptr(30.0),
		Notes:         ptr.Ptr("  trae su tinte  "),
		Status:        ptr.Ptr("done"),
		PaymentMethod: ptr.Ptr("bizum"),
	})
	require.NoError(t, err)

	assert.Equal(t, "12:00", resp.StartTime)
	assert.Equal(t, "12:45", resp.EndTime)
	assert.Equal(t, 30.0, *resp.Price)
	assert.Equal(t, "trae su tinte", *resp.Notes)
	assert.Equal(t, "bizum", *resp.PaymentMethod)
	assert.True(t, resp.Paid)
}

func TestUpdate_Rejections(t *testing.T) {
	loc := madrid(t)
	before := time.Date(2026, 10, 15, 9, 30, 0, 0, loc)

	tests := []struct {
		name    string
		req     models.UpdateAppointmentRequest
		wantErr error
	}{
		{name: "empty", req: models.UpdateAppointmentRequest{}, wantErr: ErrInvalidInput},
		{name: "end before start", req: models.UpdateAppointmentRequest{EndTime: &before}, wantErr: ErrInvalidTimeRange},
		{name: "negative price", req: models.UpdateAppointmentRequest{Price: ptr.Ptr(-5.0)}, wantErr: ErrInvalidInput},
		{name: "unknown status", req: models.UpdateAppointmentRequest{Status: ptr.Ptr("pending")}, wantErr: ErrInvalidStatus},
		{name: "unknown method", req: models.UpdateAppointmentRequest{PaymentMethod: ptr.Ptr("cheque")}, wantErr: ErrInvalidPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &appointmentRepoMock{}
			svc := NewService(repo, txManagerStub{}, loc, logger.NewNop())
			appt := paidByCard(t)
			repo.On("GetByID", mock.Anything, appt.ID).Return(appt, nil)

			_, err := svc.Update(context.Background(), appt.ID, &tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := &appointmentRepoMock{}
	svc := NewService(repo, txManagerStub{}, madrid(t), logger.NewNop())
	found, missing := uuid.New(), uuid.New()

	repo.On("Delete", mock.Anything, found).Return(nil)
	repo.On("Delete", mock.Anything, missing).Return(appointmentRepo.ErrAppointmentNotFound)

	assert.NoError(t, svc.Delete(context.Background(), found))
	assert.ErrorIs(t, svc.Delete(context.Background(), missing), ErrAppointmentNotFound)
}
