package import_contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
)

// UseCase use case импорта контактов в справочник клиентов
type UseCase struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clientRepo ClientRepository, logger Logger) *UseCase {
	return &UseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Execute выполняет импорт
// Дубли по нормализованному телефону пропускаются, контакты без телефона импортируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ImportContacts: received %d contacts", len(req.Contacts))

	if len(req.Contacts) > MaxContacts {
		uc.logger.Warn("ImportContacts: %d contacts exceed the limit of %d", len(req.Contacts), MaxContacts)
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyContacts, len(req.Contacts), MaxContacts)
	}

	resp := &Response{}

	// 1. Нормализуем телефоны и убираем дубли внутри файла
	seen := make(map[string]struct{})
	cleaned := make([]*domain.Client, 0, len(req.Contacts))

	for _, c := range req.Contacts {
		name := strings.TrimSpace(c.FullName)
		if name == "" {
			continue
		}
		if runes := []rune(name); len(runes) > domain.MaxClientNameLength {
			name = string(runes[:domain.MaxClientNameLength])
		}
		resp.Detected++

		phone := strings.TrimSpace(c.Phone)
		norm := domain.NormalizePhoneES(phone)
		if norm == "" {
			resp.WithoutPhone++
			client := &domain.Client{FullName: name}
			if phone != "" {
				client.Phone = &phone
			}
			cleaned = append(cleaned, client)
			continue
		}

		if _, dup := seen[norm]; dup {
			resp.DuplicateInFile++
			continue
		}
		seen[norm] = struct{}{}

		p, n := phone, norm
		cleaned = append(cleaned, &domain.Client{FullName: name, Phone: &p, PhoneNorm: &n})
	}

	if resp.Detected == 0 {
		uc.logger.Warn("ImportContacts: nothing to import")
		return nil, ErrNoContacts
	}

	// 2. Определяем номера, которые уже есть в справочнике
	existing, err := uc.existingPhones(ctx, cleaned)
	if err != nil {
		uc.logger.Error("ImportContacts: failed to look up existing phones: %v", err)
		return nil, fmt.Errorf("%w: failed to look up existing phones: %v", ErrInternal, err)
	}

	toInsert := make([]*domain.Client, 0, len(cleaned))
	for _, c := range cleaned {
		if c.PhoneNorm != nil {
			if _, ok := existing[*c.PhoneNorm]; ok {
				resp.AlreadyExisting++
				continue
			}
		}
		toInsert = append(toInsert, c)
	}
	resp.Attempted = len(toInsert)

	// 3. Вставляем пачками, при ошибке пачки - по одному
	for i := 0; i < len(toInsert); i += InsertBatchSize {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("ImportContacts: interrupted after %d imported: %v", resp.Imported, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		end := i + InsertBatchSize
		if end > len(toInsert) {
			end = len(toInsert)
		}
		batch := toInsert[i:end]

		err := uc.clientRepo.CreateBatch(ctx, batch)
		if err == nil {
			resp.Imported += len(batch)
			continue
		}
		uc.logger.Warn("ImportContacts: batch %d-%d failed, inserting one by one: %v", i, end, err)

		for _, c := range batch {
			_, err := uc.clientRepo.Create(ctx, c)
			switch {
			case err == nil:
				resp.Imported++
			case errors.Is(err, clientRepo.ErrDuplicatePhone):
				resp.AlreadyExisting++
			default:
				uc.logger.Error("ImportContacts: failed to insert %q: %v", c.FullName, err)
				resp.Failed++
			}
		}
	}

	uc.logger.Info("ImportContacts: detected=%d imported=%d dupInFile=%d dupInDb=%d noPhone=%d failed=%d attempted=%d",
		resp.Detected, resp.Imported, resp.DuplicateInFile, resp.AlreadyExisting, resp.WithoutPhone, resp.Failed, resp.Attempted)

	return resp, nil
}

// existingPhones проверяет номера порциями по LookupChunkSize
func (uc *UseCase) existingPhones(ctx context.Context, clients []*domain.Client) (map[string]struct{}, error) {
	norms := make([]string, 0, len(clients))
	for _, c := range clients {
		if c.PhoneNorm != nil {
			norms = append(norms, *c.PhoneNorm)
		}
	}

	existing := make(map[string]struct{})
	for i := 0; i < len(norms); i += LookupChunkSize {
		end := i + LookupChunkSize
		if end > len(norms) {
			end = len(norms)
		}

		found, err := uc.clientRepo.ExistingPhoneNorms(ctx, norms[i:end])
		if err != nil {
			return nil, err
		}
		for _, n := range found {
			existing[n] = struct{}{}
		}
	}

	return existing, nil
}
