package create_working_hours

import "github.com/primobarber/PB-BookingService/internal/service/schedule/models"

// CreateWorkingHoursRequest HTTP модель правила рабочих часов
type CreateWorkingHoursRequest struct {
	DayOfWeek       int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime       string `json:"startTime" validate:"required"`
	EndTime         string `json:"endTime" validate:"required"`
	IntervalMinutes int    `json:"intervalMinutes" validate:"gt=0"`
	Active          *bool  `json:"active"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *CreateWorkingHoursRequest) ToServiceRequest() *models.UpsertWorkingHoursRequest {
	return &models.UpsertWorkingHoursRequest{
		DayOfWeek:       r.DayOfWeek,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IntervalMinutes: r.IntervalMinutes,
		Active:          r.Active,
	}
}
