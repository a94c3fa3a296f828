package create_setting

import "github.com/primobarber/PB-BookingService/internal/service/settings/models"

// CreateSettingRequest HTTP модель создания настройки
type CreateSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *CreateSettingRequest) ToServiceRequest() *models.CreateSettingRequest {
	return &models.CreateSettingRequest{
		Key:   r.Key,
		Value: r.Value,
		Type:  r.Type,
	}
}
