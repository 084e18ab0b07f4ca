package catalog

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

	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) List(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	args := m.Called(ctx, onlyActive)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) Update(ctx context.Context, id uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func serve(h *Handler, method, url, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/services", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/services/{serviceId}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/services/{serviceId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/services/{serviceId}", h.Delete).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, url, strings.NewReader(body)))
	return rec
}

func TestList(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())

	svc.On("List", mock.Anything, true).Return(&models.ServiceListResponse{Services: []models.ServiceResponse{{Name: "Corte"}}}, nil)
	svc.On("List", mock.Anything, false).Return(nil, errors.New("boom"))

	rec := serve(h, http.MethodGet, "/api/v1/services?active=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Corte"`)

	assert.Equal(t, http.StatusInternalServerError, serve(h, http.MethodGet, "/api/v1/services", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/api/v1/services?active=si", "").Code)
}

func TestCreate(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())

	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.ServiceRequest) bool {
		return req.Name == "Tinte" && req.TotalMinutes == 90 && *req.ActiveMinutes == 30
	})).Return(&models.ServiceResponse{ID: uuid.New(), Name: "Tinte"}, nil)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.ServiceRequest) bool {
		return req.Name == ""
	})).Return(nil, catalogService.ErrInvalidInput)

	rec := serve(h, http.MethodPost, "/api/v1/services", `{"name":"Tinte","totalMinutes":90,"activeMinutes":30,"defaultPrice":45}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/services", `{"name":"","totalMinutes":90}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/services", `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.NewNop())
	id, used, missing := uuid.New(), uuid.New(), uuid.New()

	svc.On("Update", mock.Anything, id, mock.Anything).Return(&models.ServiceResponse{ID: id}, nil)
	svc.On("Update", mock.Anything, missing, mock.Anything).Return(nil, catalogService.ErrServiceNotFound)
	svc.On("Delete", mock.Anything, id).Return(nil)
	svc.On("Delete", mock.Anything, used).Return(catalogService.ErrServiceInUse)

	body := `{"name":"Corte","totalMinutes":30}`
	assert.Equal(t, http.StatusOK, serve(h, http.MethodPut, "/api/v1/services/"+id.String(), body).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodPut, "/api/v1/services/"+missing.String(), body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodPut, "/api/v1/services/corte", body).Code)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/api/v1/services/"+id.String(), "").Code)
	assert.Equal(t, http.StatusConflict, serve(h, http.MethodDelete, "/api/v1/services/"+used.String(), "").Code)
}
