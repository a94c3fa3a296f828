package create_service

import "github.com/primobarber/PB-BookingService/internal/service/catalog/models"

// CreateServiceRequest HTTP модель создания услуги
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration"`
	Image       string  `json:"image"`
	Active      *bool   `json:"active"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *CreateServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Image:       r.Image,
		Active:      r.Active,
	}
}
