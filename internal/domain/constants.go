package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Default schedule values
const (
	DefaultGranularityMinutes = 15
	DefaultTimezone           = "Europe/Madrid"
)

var (
	DefaultOpenTime  = types.TimeString("09:00")
	DefaultCloseTime = types.TimeString("20:00")
)

// Default service values (used when a service is created inline while booking)
const (
	DefaultServiceDurationMinutes = 30
	DefaultServicePrice           = 0.0
)

// Business validation constants
const (
	MaxServiceDurationMinutes = 720 // 12 hours
	MaxServiceNameLength      = 120
	MaxClientNameLength       = 200
	MaxNotesLength            = 1000
	MaxInstagramLength        = 100
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
