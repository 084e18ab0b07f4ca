package appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) GetDay(ctx context.Context, req *models.GetDayRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) GetClientAppointments(ctx context.Context, clientID uuid.UUID) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, clientID)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) Update(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// newRouter собирает маршруты так же, как main
func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments", h.GetDay).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/appointments/{appointmentId}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/appointments/{appointmentId}", h.Update).Methods(http.MethodPatch)
	r.HandleFunc("/api/v1/appointments/{appointmentId}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/clients/{clientId}/appointments", h.GetClientAppointments).Methods(http.MethodGet)
	return r
}

func serve(t *testing.T, h *Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	}
	newRouter(h).ServeHTTP(rec, req)
	return rec
}

func TestGetDay(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())

	svc.On("GetDay", mock.Anything, &models.GetDayRequest{Date: "2026-10-15", IncludeCancelled: true}).
		Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{StartTime: "10:00"}}}, nil)
	svc.On("GetDay", mock.Anything, &models.GetDayRequest{Date: "ayer"}).
		Return(nil, appointmentsService.ErrInvalidDate)

	rec := serve(t, h, http.MethodGet, "/api/v1/appointments?date=2026-10-15&includeCancelled=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"startTime":"10:00"`)

	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodGet, "/api/v1/appointments", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodGet, "/api/v1/appointments?date=2026-10-15&includeCancelled=quizas", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodGet, "/api/v1/appointments?date=ayer", "").Code)
}

func TestGetByID(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())
	found, missing := uuid.New(), uuid.New()

	svc.On("GetByID", mock.Anything, found).Return(&models.AppointmentResponse{ID: found}, nil)
	svc.On("GetByID", mock.Anything, missing).Return(nil, appointmentsService.ErrAppointmentNotFound)

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/api/v1/appointments/"+found.String(), "").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodGet, "/api/v1/appointments/"+missing.String(), "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodGet, "/api/v1/appointments/12", "").Code)
}

func TestGetClientAppointments(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())
	ok, broken := uuid.New(), uuid.New()

	svc.On("GetClientAppointments", mock.Anything, ok).Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil)
	svc.On("GetClientAppointments", mock.Anything, broken).Return(nil, errors.New("boom"))

	rec := serve(t, h, http.MethodGet, "/api/v1/clients/"+ok.String()+"/appointments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())

	assert.Equal(t, http.StatusInternalServerError, serve(t, h, http.MethodGet, "/api/v1/clients/"+broken.String()+"/appointments", "").Code)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "ok", body: `{"paid":true,"paymentMethod":"cash"}`, wantStatus: http.StatusOK},
		{name: "unknown field", body: `{"color":"rojo"}`, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"paid":true}`, svcErr: appointmentsService.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "time range", body: `{"paid":true}`, svcErr: appointmentsService.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "status", body: `{"status":"x"}`, svcErr: appointmentsService.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "payment method", body: `{"paymentMethod":"x"}`, svcErr: appointmentsService.ErrInvalidPaymentMethod, wantStatus: http.StatusBadRequest},
		{name: "input", body: `{"price":-1}`, svcErr: appointmentsService.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: `{"paid":true}`, svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{}
			h := NewHandler(svc, logger.NewNop())
			id := uuid.New()

			if tt.svcErr != nil {
				svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, tt.svcErr)
			} else {
				svc.On("Update", mock.Anything, id, mock.Anything).Return(&models.AppointmentResponse{ID: id, Paid: true}, nil)
			}

			rec := serve(t, h, http.MethodPatch, "/api/v1/appointments/"+id.String(), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDelete(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())
	found, missing := uuid.New(), uuid.New()

	svc.On("Delete", mock.Anything, found).Return(nil)
	svc.On("Delete", mock.Anything, missing).Return(appointmentsService.ErrAppointmentNotFound)

	assert.Equal(t, http.StatusNoContent, serve(t, h, http.MethodDelete, "/api/v1/appointments/"+found.String(), "").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, h, http.MethodDelete, "/api/v1/appointments/"+missing.String(), "").Code)
}
