package create_setting

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	Create(ctx context.Context, req *models.CreateSettingRequest) (*models.SettingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
