package import_contacts

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	ExistingPhoneNorms(ctx context.Context, norms []string) ([]string, error)
	CreateBatch(ctx context.Context, clients []*domain.Client) error
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
