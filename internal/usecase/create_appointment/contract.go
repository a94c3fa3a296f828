package create_appointment

import (
	"context"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetActiveByDate внутри транзакции блокирует возвращаемые строки (FOR UPDATE)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория календарных правил
type ScheduleRepository interface {
	GetBlockedDate(ctx context.Context, date string) (*domain.BlockedDate, error)
	GetActiveWorkingHoursByDay(ctx context.Context, dayOfWeek int) (*domain.WorkingHoursRule, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
