package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service сервис справочника клиентов
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Search ищет клиентов по имени или телефону
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.ClientListResponse, error) {
	q := strings.TrimSpace(req.Query)
	limit := req.Limit
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}
	if limit > models.MaxSearchLimit {
		limit = models.MaxSearchLimit
	}

	s.logger.Info("Search: q=%q, limit=%d", q, limit)

	clients, err := s.clientRepo.Search(ctx, q, limit)
	if err != nil {
		s.logger.Error("Search: repository error for q=%q: %v", q, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(clients), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(c), nil
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, req *models.ClientRequest) (*models.ClientResponse, error) {
	c := req.ToDomain()
	s.logger.Info("Create: creating client %q", c.FullName)

	if err := validateClient(c); err != nil {
		s.logger.Warn("Create: invalid client: %v", err)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			s.logger.Warn("Create: phone %s already exists", ptr.Deref(c.PhoneNorm, ""))
			return nil, ErrDuplicatePhone
		}
		s.logger.Error("Create: repository error for client %q: %v", c.FullName, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// Update полностью заменяет данные клиента
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.ClientRequest) (*models.ClientResponse, error) {
	c := req.ToDomain()
	c.ID = id
	s.logger.Info("Update: updating client id=%s", id)

	if err := validateClient(c); err != nil {
		s.logger.Warn("Update: invalid client id=%s: %v", id, err)
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, clientRepo.ErrClientNotFound):
			s.logger.Warn("Update: client id=%s not found", id)
			return nil, ErrClientNotFound
		case errors.Is(err, clientRepo.ErrDuplicatePhone):
			s.logger.Warn("Update: phone %s already exists", ptr.Deref(c.PhoneNorm, ""))
			return nil, ErrDuplicatePhone
		}
		s.logger.Error("Update: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет клиента вместе с его записями
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting client id=%s", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%s", id)
	return nil
}
