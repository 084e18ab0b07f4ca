package cash_register

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/service/cashregister"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) GetReport(ctx context.Context, date string) (*cashregister.Report, error) {
	args := m.Called(ctx, date)
	if v := args.Get(0); v != nil {
		return v.(*cashregister.Report), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, time.UTC, logger.NewNop())
	h.now = func() time.Time { return time.Date(2026, 10, 14, 23, 0, 0, 0, time.UTC) }

	svc.On("GetReport", mock.Anything, "2026-10-14").Return(&cashregister.Report{
		Date:      "2026-10-14",
		Month:     "2026-10",
		DayTotals: cashregister.Totals{Total: 45, Cash: 45, Count: 1},
	}, nil)
	svc.On("GetReport", mock.Anything, "hoy").Return(nil, cashregister.ErrInvalidDate)
	svc.On("GetReport", mock.Anything, "2026-10-01").Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cash-register", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"day":{"total":45,"cash":45,"card":0,"bizum":0,"unspecified":0,"count":1}`)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cash-register?date=hoy", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cash-register?date=2026-10-01", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
