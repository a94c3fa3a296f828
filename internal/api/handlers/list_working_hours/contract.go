package list_working_hours

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListWorkingHours(ctx context.Context) (*models.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
