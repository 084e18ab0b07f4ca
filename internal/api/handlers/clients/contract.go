package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
)

type ClientService interface {
	Search(ctx context.Context, req *models.SearchRequest) (*models.ClientListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error)
	Create(ctx context.Context, req *models.ClientRequest) (*models.ClientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.ClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
