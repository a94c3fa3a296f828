package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/primobarber/PB-BookingService/internal/domain"
	scheduleRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/schedule"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// UseCase use case вычисления доступных слотов на дату
// Доступность всегда вычисляется заново из хранилища, без кеширования:
// движок и валидатор записи никогда не видят устаревшее состояние
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailability: date=%s", dateStr)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверка блокировки даты - безусловная, обрывает всю дальнейшую логику
	blocked, err := uc.scheduleRepo.GetBlockedDate(ctx, dateStr)
	if err != nil && !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
		uc.logger.Error("GetAvailability: failed to get blocked date: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked date: %v", ErrInternal, err)
	}
	if blocked != nil {
		uc.logger.Info("GetAvailability: date %s is blocked", dateStr)
		return &Response{
			Date:           req.Date,
			AvailableTimes: []types.TimeString{},
			Blocked:        true,
			Reason:         blocked.Reason,
		}, nil
	}

	// 3. Правило рабочих часов на день недели (0=понедельник)
	dayOfWeek := domain.WeekdayIndex(req.Date)

	rule, err := uc.scheduleRepo.GetActiveWorkingHoursByDay(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
			// Нет активного правила - заведение закрыто в этот день
			uc.logger.Info("GetAvailability: closed on %s (day_of_week=%d)", dateStr, dayOfWeek)
			return &Response{
				Date:           req.Date,
				AvailableTimes: []types.TimeString{},
				Blocked:        false,
			}, nil
		}
		uc.logger.Error("GetAvailability: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 4. Генерируем слоты дня
	slots, err := generateSlots(rule)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. Получаем неотмененные записи на дату
	appointments, err := uc.appointmentRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Вычитаем занятые времена, порядок генерации сохраняется
	available := subtractBooked(slots, appointments)

	uc.logger.Info("GetAvailability: date=%s, slots=%d, available=%d",
		dateStr, len(slots), len(available))

	return &Response{
		Date:           req.Date,
		AvailableTimes: available,
		Blocked:        false,
	}, nil
}
