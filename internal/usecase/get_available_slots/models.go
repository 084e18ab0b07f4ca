package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date          string     // День в формате YYYY-MM-DD (локальное время салона)
	ServiceID     *uuid.UUID // Услуга, из которой берутся длительности
	TotalMinutes  *int       // Переопределяет полную длительность услуги
	ActiveMinutes *int       // Переопределяет активную длительность услуги
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date          time.Time        // Локальная полночь дня
	Closed        bool             // Салон не работает в этот день
	HolidayName   *string          // Название праздника, если день праздничный
	Open          types.TimeString // Время открытия
	Close         types.TimeString // Время закрытия
	TotalMinutes  int              // Использованная полная длительность
	ActiveMinutes int              // Использованная активная длительность
	Slots         []time.Time      // Свободные времена начала по возрастанию
}
