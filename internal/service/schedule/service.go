package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	schedRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/schedule"
	"github.com/primobarber/PB-BookingService/internal/service/schedule/models"
)

// Service сервис управления расписанием: рабочие часы и блокировки дат
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListWorkingHours получает все правила рабочих часов
func (s *Service) ListWorkingHours(ctx context.Context) (*models.WorkingHoursListResponse, error) {
	s.logger.Info("ListWorkingHours: fetching working hours")

	rules, err := s.scheduleRepo.ListWorkingHours(ctx)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// CreateWorkingHours создает правило рабочих часов для дня недели
func (s *Service) CreateWorkingHours(ctx context.Context, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("CreateWorkingHours: creating rule for day=%d", req.DayOfWeek)

	rule, err := req.ToDomainRule()
	if err != nil {
		s.logger.Warn("CreateWorkingHours: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.scheduleRepo.CreateWorkingHours(ctx, rule)
	if err != nil {
		if errors.Is(err, schedRepo.ErrWorkingHoursExists) {
			s.logger.Warn("CreateWorkingHours: rule for day=%d already exists", req.DayOfWeek)
			return nil, ErrWorkingHoursExists
		}
		s.logger.Error("CreateWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWorkingHours: successfully created rule id=%s for day=%d", created.ID, created.DayOfWeek)
	return models.FromDomainRule(created), nil
}

// UpdateWorkingHours заменяет правило рабочих часов для дня недели
func (s *Service) UpdateWorkingHours(ctx context.Context, dayOfWeek int, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating rule for day=%d", dayOfWeek)

	// день в пути имеет приоритет над телом запроса
	req.DayOfWeek = dayOfWeek

	rule, err := req.ToDomainRule()
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: invalid request for day=%d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.scheduleRepo.UpdateWorkingHours(ctx, dayOfWeek, rule)
	if err != nil {
		if errors.Is(err, schedRepo.ErrWorkingHoursNotFound) {
			s.logger.Warn("UpdateWorkingHours: rule for day=%d not found", dayOfWeek)
			return nil, ErrWorkingHoursNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for day=%d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: successfully updated rule for day=%d", dayOfWeek)
	return models.FromDomainRule(updated), nil
}

// DeleteWorkingHours удаляет правило рабочих часов для дня недели
// После удаления день считается выходным
func (s *Service) DeleteWorkingHours(ctx context.Context, dayOfWeek int) error {
	s.logger.Info("DeleteWorkingHours: deleting rule for day=%d", dayOfWeek)

	if !domain.ValidDayOfWeek(dayOfWeek) {
		s.logger.Warn("DeleteWorkingHours: invalid day=%d", dayOfWeek)
		return fmt.Errorf("%w: dayOfWeek must be in range 0..6, got %d", ErrInvalidInput, dayOfWeek)
	}

	if err := s.scheduleRepo.DeleteWorkingHours(ctx, dayOfWeek); err != nil {
		if errors.Is(err, schedRepo.ErrWorkingHoursNotFound) {
			s.logger.Warn("DeleteWorkingHours: rule for day=%d not found", dayOfWeek)
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("DeleteWorkingHours: repository error for day=%d: %v", dayOfWeek, err)
		return fmt.Errorf("%w: DeleteWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWorkingHours: successfully deleted rule for day=%d", dayOfWeek)
	return nil
}

// ListBlockedDates получает все заблокированные даты
func (s *Service) ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error) {
	s.logger.Info("ListBlockedDates: fetching blocked dates")

	dates, err := s.scheduleRepo.ListBlockedDates(ctx)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(dates), nil
}

// CreateBlockedDate блокирует дату для записи
func (s *Service) CreateBlockedDate(ctx context.Context, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("CreateBlockedDate: blocking date=%s", req.Date)

	bd, err := req.ToDomainBlockedDate()
	if err != nil {
		s.logger.Warn("CreateBlockedDate: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.scheduleRepo.CreateBlockedDate(ctx, bd)
	if err != nil {
		if errors.Is(err, schedRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("CreateBlockedDate: date=%s already blocked", req.Date)
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("CreateBlockedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedDate: successfully blocked date=%s", created.Date)
	return models.FromDomainBlockedDate(created), nil
}

// DeleteBlockedDate снимает блокировку с даты
func (s *Service) DeleteBlockedDate(ctx context.Context, date string) error {
	s.logger.Info("DeleteBlockedDate: unblocking date=%s", date)

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("DeleteBlockedDate: invalid date=%q", date)
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
	}

	if err := s.scheduleRepo.DeleteBlockedDate(ctx, date); err != nil {
		if errors.Is(err, schedRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("DeleteBlockedDate: date=%s not found", date)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("DeleteBlockedDate: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedDate: successfully unblocked date=%s", date)
	return nil
}
