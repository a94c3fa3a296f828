package appointments

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
