package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Время, предложенное поиском свободных слотов, должно приниматься при записи с теми же параметрами
func TestExecute_AgreesWithAvailableSlots(t *testing.T) {
	f := newFixture(t)

	f.clients.On("GetByID", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
	f.services.On("GetByID", mock.Anything, serviceID).Return(tinte(), nil)

	// Активная часть 10:15-10:45
	existing := time.Date(2026, 10, 15, 10, 15, 0, 0, f.loc)
	f.appts.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{
		{StartTime: existing, EndTime: existing.Add(90 * time.Minute), Status: domain.StatusReserved, ServiceActiveDuration: ptr.Ptr(30)},
	}, nil)
	f.appts.On("Create", mock.Anything, mock.Anything).Return(&domain.Appointment{ID: uuid.New()}, nil)

	slotsUC := getAvailableSlots.NewUseCase(f.appts, f.services, f.uc.schedule, nil, logger.NewNop())
	sid := serviceID
	slots, err := slotsUC.Execute(context.Background(), &getAvailableSlots.Request{
		Date:          "2026-10-15",
		ServiceID:     &sid,
		ActiveMinutes: ptr.Ptr(15),
	})
	require.NoError(t, err)

	offered := make(map[string]bool, len(slots.Slots))
	for _, s := range slots.Slots {
		offered[s.Format(domain.TimeFormat)] = true
	}
	assert.False(t, offered["10:00"])
	assert.True(t, offered["10:45"])

	for _, start := range []string{"09:30", "10:00", "10:15", "10:45", "11:00"} {
		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:      clientID,
			ServiceID:     serviceID,
			Date:          "2026-10-15",
			StartTime:     types.TimeString(start),
			ActiveMinutes: ptr.Ptr(15),
		})
		if offered[start] {
			assert.NoError(t, err, "start %s was offered", start)
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable, "start %s was not offered", start)
		}
	}
}
