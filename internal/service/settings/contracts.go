package settings

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// SettingRepository интерфейс репозитория настроек
type SettingRepository interface {
	List(ctx context.Context) ([]*domain.Setting, error)
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
	Create(ctx context.Context, s *domain.Setting) (*domain.Setting, error)
	UpdateByKey(ctx context.Context, key string, update domain.SettingUpdate) (*domain.Setting, error)
	DeleteByKey(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
