package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/internal/service/dashboard/models"
)

// Service сервис агрегированной статистики для дашборда
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Stats собирает сводку: количество записей по статусам, записи на сегодня,
// выручка текущего месяца по завершенным записям и число активных услуг
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: building dashboard stats")

	total, err := s.appointmentRepo.Count(ctx, domain.AppointmentFilter{})
	if err != nil {
		s.logger.Error("Stats: count total failed: %v", err)
		return nil, fmt.Errorf("%w: Stats - count total: %v", ErrInternal, err)
	}

	byStatus := models.StatusBreakdown{}
	for status, dst := range map[domain.AppointmentStatus]*int{
		domain.StatusPending:   &byStatus.Pending,
		domain.StatusConfirmed: &byStatus.Confirmed,
		domain.StatusCancelled: &byStatus.Cancelled,
		domain.StatusCompleted: &byStatus.Completed,
	} {
		st := status
		count, err := s.appointmentRepo.Count(ctx, domain.AppointmentFilter{Status: &st})
		if err != nil {
			s.logger.Error("Stats: count status=%s failed: %v", status, err)
			return nil, fmt.Errorf("%w: Stats - count by status: %v", ErrInternal, err)
		}
		*dst = count
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayCount, err := s.appointmentRepo.Count(ctx, domain.AppointmentFilter{
		DateFrom: &today,
		DateTo:   &today,
	})
	if err != nil {
		s.logger.Error("Stats: count today failed: %v", err)
		return nil, fmt.Errorf("%w: Stats - count today: %v", ErrInternal, err)
	}

	revenue, err := s.monthRevenue(ctx, now)
	if err != nil {
		return nil, err
	}

	activeServices, err := s.serviceRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("Stats: count active services failed: %v", err)
		return nil, fmt.Errorf("%w: Stats - count active services: %v", ErrInternal, err)
	}

	s.logger.Info("Stats: total=%d, today=%d, monthRevenue=%.2f", total, todayCount, revenue)
	return &models.StatsResponse{
		TotalAppointments: total,
		ByStatus:          byStatus,
		TodayCount:        todayCount,
		MonthRevenue:      revenue,
		ActiveServices:    activeServices,
	}, nil
}

// monthRevenue суммирует цены услуг по завершенным записям текущего месяца.
// Цены подтягиваются одним батч-запросом по уникальным service_id;
// записи на удаленные услуги учитываются с нулевой стоимостью
func (s *Service) monthRevenue(ctx context.Context, now time.Time) (float64, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	completed := domain.StatusCompleted
	appointments, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentFilter{
		Status:   &completed,
		DateFrom: &monthStart,
		DateTo:   &monthEnd,
		Limit:    domain.MaxListLimit,
	})
	if err != nil {
		s.logger.Error("Stats: list completed appointments failed: %v", err)
		return 0, fmt.Errorf("%w: Stats - list completed appointments: %v", ErrInternal, err)
	}

	if len(appointments) == 0 {
		return 0, nil
	}

	seen := make(map[string]struct{}, len(appointments))
	ids := make([]string, 0, len(appointments))
	for _, appt := range appointments {
		if _, ok := seen[appt.ServiceID]; ok {
			continue
		}
		seen[appt.ServiceID] = struct{}{}
		ids = append(ids, appt.ServiceID)
	}

	services, err := s.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Stats: batch service lookup failed: %v", err)
		return 0, fmt.Errorf("%w: Stats - batch service lookup: %v", ErrInternal, err)
	}

	prices := make(map[string]float64, len(services))
	for _, svc := range services {
		prices[svc.ID] = svc.Price
	}

	var revenue float64
	for _, appt := range appointments {
		revenue += prices[appt.ServiceID]
	}
	return revenue, nil
}
