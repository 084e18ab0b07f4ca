package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceRequest данные услуги для создания и полного обновления
// ActiveMinutes = nil означает, что вся длительность активная
type ServiceRequest struct {
	Name          string  `json:"name"`
	TotalMinutes  int     `json:"totalMinutes"`
	ActiveMinutes *int    `json:"activeMinutes"`
	DefaultPrice  float64 `json:"defaultPrice"`
	IsActive      *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// ToDomain собирает domain модель из запроса
func (r *ServiceRequest) ToDomain() *domain.Service {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &domain.Service{
		Name:                  strings.TrimSpace(r.Name),
		TotalDurationMinutes:  r.TotalMinutes,
		ActiveDurationMinutes: r.ActiveMinutes,
		DefaultPrice:          r.DefaultPrice,
		IsActive:              isActive,
	}
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TotalMinutes    int       `json:"totalMinutes"`
	ActiveMinutes   *int      `json:"activeMinutes"`
	HasExposureTail bool      `json:"hasExposureTail"`
	DefaultPrice    float64   `json:"defaultPrice"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		TotalMinutes:    s.TotalDurationMinutes,
		ActiveMinutes:   s.ActiveDurationMinutes,
		HasExposureTail: s.HasExposureTail(),
		DefaultPrice:    s.DefaultPrice,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		if r := FromDomainService(s); r != nil {
			resp.Services = append(resp.Services, *r)
		}
	}
	return resp
}
