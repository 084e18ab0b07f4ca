package get_available_slots

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string          `json:"date"`
	Closed        bool            `json:"closed"`
	HolidayName   *string         `json:"holidayName,omitempty"`
	Open          string          `json:"open,omitempty"`
	Close         string          `json:"close,omitempty"`
	TotalMinutes  int             `json:"totalMinutes"`
	ActiveMinutes int             `json:"activeMinutes"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot свободное время начала
type AvailableSlot struct {
	StartTime string    `json:"startTime"` // "10:30"
	Start     time.Time `json:"start"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, start := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: start.Format(domain.TimeFormat),
			Start:     start,
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Closed:        resp.Closed,
		HolidayName:   resp.HolidayName,
		Open:          resp.Open.String(),
		Close:         resp.Close.String(),
		TotalMinutes:  resp.TotalMinutes,
		ActiveMinutes: resp.ActiveMinutes,
		Slots:         slots,
	}
}

// queryError ошибка разбора конкретного query параметра
type queryError struct {
	param string
	err   error
}

func (e *queryError) Error() string {
	return e.param + ": " + e.err.Error()
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Date: query.Get("date")}

	if s := query.Get("serviceId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &queryError{param: "serviceId", err: err}
		}
		req.ServiceID = &id
	}

	var err error
	if req.TotalMinutes, err = optionalInt(query, "totalMinutes"); err != nil {
		return nil, err
	}
	if req.ActiveMinutes, err = optionalInt(query, "activeMinutes"); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalInt(query url.Values, param string) (*int, error) {
	s := query.Get(param)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, &queryError{param: param, err: err}
	}
	return &v, nil
}
