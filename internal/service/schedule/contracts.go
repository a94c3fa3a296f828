package schedule

import (
	"context"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListWorkingHours(ctx context.Context) ([]*domain.WorkingHoursRule, error)
	CreateWorkingHours(ctx context.Context, rule *domain.WorkingHoursRule) (*domain.WorkingHoursRule, error)
	UpdateWorkingHours(ctx context.Context, dayOfWeek int, rule *domain.WorkingHoursRule) (*domain.WorkingHoursRule, error)
	DeleteWorkingHours(ctx context.Context, dayOfWeek int) error

	ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, date string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
