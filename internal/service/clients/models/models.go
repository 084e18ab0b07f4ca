package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Лимиты поиска
const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 200
)

// ClientRequest данные клиента для создания и полного обновления
type ClientRequest struct {
	FullName  string  `json:"fullName"`
	Phone     *string `json:"phone,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToDomain собирает domain модель, нормализуя телефон
// Пустые строки превращаются в nil
func (r *ClientRequest) ToDomain() *domain.Client {
	c := &domain.Client{
		FullName:  strings.TrimSpace(r.FullName),
		Phone:     trimmed(r.Phone),
		Instagram: trimmed(r.Instagram),
		Notes:     trimmed(r.Notes),
	}
	if c.Phone != nil {
		if norm := domain.NormalizePhoneES(*c.Phone); norm != "" {
			c.PhoneNorm = &norm
		}
	}
	return c
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// SearchRequest запрос поиска клиентов
type SearchRequest struct {
	Query string `json:"q"`
	Limit int    `json:"limit"`
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Phone     *string   `json:"phone"`
	PhoneNorm *string   `json:"phoneNorm"`
	Instagram *string   `json:"instagram"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		PhoneNorm: c.PhoneNorm,
		Instagram: c.Instagram,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}
	for _, c := range clients {
		if r := FromDomainClient(c); r != nil {
			resp.Clients = append(resp.Clients, *r)
		}
	}
	return resp
}
