package get_setting

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	GetByKey(ctx context.Context, key string) (*models.SettingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
