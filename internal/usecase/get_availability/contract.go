package get_availability

import (
	"context"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория календарных правил
type ScheduleRepository interface {
	// GetBlockedDate получает запись блокировки даты ("YYYY-MM-DD")
	GetBlockedDate(ctx context.Context, date string) (*domain.BlockedDate, error)
	// GetActiveWorkingHoursByDay получает активное правило рабочих часов на день недели
	GetActiveWorkingHoursByDay(ctx context.Context, dayOfWeek int) (*domain.WorkingHoursRule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByDate получает все неотмененные записи на дату
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
