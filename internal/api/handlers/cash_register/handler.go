package cash_register

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/cashregister"
)

const msgInvalidDate = "formato de fecha no válido, se espera AAAA-MM-DD"

type Handler struct {
	service  CashRegisterService
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(service CashRegisterService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: loc,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/cash-register?date=YYYY-MM-DD
// Без даты отчёт строится за сегодня в часовом поясе салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.now().In(h.location).Format(domain.DateFormat)
	}

	report, err := h.service.GetReport(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, cashregister.ErrInvalidDate):
			h.logger.Warn("GET /cash-register - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /cash-register - Failed to build report: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cash-register - Report built successfully: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, report)
}
