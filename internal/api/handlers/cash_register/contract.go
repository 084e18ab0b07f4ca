package cash_register

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/cashregister"
)

type CashRegisterService interface {
	GetReport(ctx context.Context, date string) (*cashregister.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
