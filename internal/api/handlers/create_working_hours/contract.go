package create_working_hours

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateWorkingHours(ctx context.Context, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
