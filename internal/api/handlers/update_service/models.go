package update_service

import "github.com/primobarber/PB-BookingService/internal/service/catalog/models"

// UpdateServiceRequest HTTP модель частичного обновления услуги
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
	Image       *string  `json:"image"`
	Active      *bool    `json:"active"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *UpdateServiceRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Image:       r.Image,
		Active:      r.Active,
	}
}
