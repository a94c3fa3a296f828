package update_working_hours

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWorkingHours(ctx context.Context, dayOfWeek int, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
