package create_blocked_date

import "github.com/primobarber/PB-BookingService/internal/service/schedule/models"

// CreateBlockedDateRequest HTTP модель блокировки даты
type CreateBlockedDateRequest struct {
	Date   string  `json:"date" validate:"required"`
	Reason *string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *CreateBlockedDateRequest) ToServiceRequest() *models.CreateBlockedDateRequest {
	return &models.CreateBlockedDateRequest{
		Date:   r.Date,
		Reason: r.Reason,
	}
}
