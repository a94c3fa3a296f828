package models

import (
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// ServiceResponse модель услуги для HTTP ответа
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Image       string  `json:"image"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// ListServicesRequest параметры выборки услуг
type ListServicesRequest struct {
	Active *bool // nil - без фильтра по активности
}

// ToDomainFilter конвертирует request в доменный фильтр
func (r *ListServicesRequest) ToDomainFilter() domain.ServiceFilter {
	return domain.ServiceFilter{Active: r.Active}
}

// CreateServiceRequest создание услуги
type CreateServiceRequest struct {
	Name        string
	Description string
	Price       float64
	Duration    string
	Image       string
	Active      *bool // nil - услуга активна по умолчанию
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *string
	Image       *string
	Active      *bool
}

// ToDomainService конвертирует request в доменную модель
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Image:       r.Image,
		Active:      active,
	}
}

// ToDomainUpdate конвертирует request в доменное обновление
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Image:       r.Image,
		Active:      r.Active,
	}
}

// FromDomainService конвертирует доменную модель в response
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		Duration:    svc.Duration,
		Image:       svc.Image,
		Active:      svc.Active,
		CreatedAt:   svc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   svc.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceList конвертирует список доменных моделей в response
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = FromDomainService(svc)
	}
	return &ServiceListResponse{
		Services: out,
		Total:    len(out),
	}
}
