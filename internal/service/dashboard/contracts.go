package dashboard

import (
	"context"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей для агрегации
type AppointmentRepository interface {
	Count(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс репозитория услуг для агрегации
type ServiceRepository interface {
	CountActive(ctx context.Context) (int, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// TimeProvider источник текущего времени, выделен для тестируемости
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
