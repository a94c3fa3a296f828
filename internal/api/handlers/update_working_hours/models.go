package update_working_hours

import "github.com/primobarber/PB-BookingService/internal/service/schedule/models"

// UpdateWorkingHoursRequest HTTP модель правила рабочих часов
// День недели берется из пути запроса
type UpdateWorkingHoursRequest struct {
	StartTime       string `json:"startTime" validate:"required"`
	EndTime         string `json:"endTime" validate:"required"`
	IntervalMinutes int    `json:"intervalMinutes" validate:"gt=0"`
	Active          *bool  `json:"active"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest() *models.UpsertWorkingHoursRequest {
	return &models.UpsertWorkingHoursRequest{
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IntervalMinutes: r.IntervalMinutes,
		Active:          r.Active,
	}
}
