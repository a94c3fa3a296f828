package update_setting

import "github.com/primobarber/PB-BookingService/internal/service/settings/models"

// UpdateSettingRequest HTTP модель обновления настройки
type UpdateSettingRequest struct {
	Value string  `json:"value"`
	Type  *string `json:"type"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *UpdateSettingRequest) ToServiceRequest() *models.UpdateSettingRequest {
	return &models.UpdateSettingRequest{
		Value: r.Value,
		Type:  r.Type,
	}
}
