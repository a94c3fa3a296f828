package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/primobarber/PB-BookingService/internal/domain"
	apptRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/service"
)

// UseCase use case создания записи клиента
// Последовательность проверок фиксирована: блокировка даты, рабочие часы,
// занятость слота, существование услуги. Порядок определяет, какую ошибку
// увидит клиент при нескольких нарушениях сразу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверки и вставка выполняются в сериализуемой транзакции; частичный
// уникальный индекс на (date, time) среди неотмененных записей закрывает
// гонку check-then-insert при конкурентных запросах на один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateAppointment: client=%s, service=%s, date=%s, time=%s, source=%s",
		req.ClientName, req.ServiceID, dateStr, req.Time, req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = domain.SourceWeb
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Дата заблокирована?
		blocked, err := uc.scheduleRepo.GetBlockedDate(txCtx, dateStr)
		if err != nil && !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			uc.logger.Error("CreateAppointment: failed to get blocked date: %v", err)
			return fmt.Errorf("%w: failed to get blocked date: %v", ErrInternal, err)
		}
		if blocked != nil {
			uc.logger.Warn("CreateAppointment: date %s is blocked", dateStr)
			return ErrDateBlocked
		}

		// 3. Есть ли активные рабочие часы на день недели
		dayOfWeek := domain.WeekdayIndex(req.Date)
		if _, err := uc.scheduleRepo.GetActiveWorkingHoursByDay(txCtx, dayOfWeek); err != nil {
			if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
				uc.logger.Warn("CreateAppointment: closed on %s (day_of_week=%d)", dateStr, dayOfWeek)
				return ErrClosed
			}
			uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// 4. Слот занят? Внутри транзакции неотмененные записи дня читаются
		// с блокировкой строк (FOR UPDATE), затем ищется точное совпадение
		// времени. Принадлежность времени сетке слотов не проверяется:
		// время вне сетки допускается, если не конфликтует
		active, err := uc.appointmentRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		for _, occupied := range active {
			if occupied.Time == req.Time {
				uc.logger.Warn("CreateAppointment: slot %s %s already booked", dateStr, req.Time)
				return ErrSlotTaken
			}
		}

		// 5. Услуга существует и активна
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsBookable() {
			uc.logger.Warn("CreateAppointment: service id=%s is inactive", req.ServiceID)
			return ErrServiceNotFound
		}

		// 6. Создаем запись со статусом pending; источник - канал вызова
		appt := &domain.Appointment{
			ClientName:             req.ClientName,
			ClientPhone:            req.ClientPhone,
			ClientTelegramUsername: req.ClientTelegramUsername,
			ServiceID:              req.ServiceID,
			Date:                   req.Date,
			Time:                   req.Time,
			Notes:                  req.Notes,
			Status:                 domain.StatusPending,
			Source:                 source,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Конкурентная запись успела занять слот - индекс сработал
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s taken concurrently", dateStr, req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return fromDomain(result), nil
}
