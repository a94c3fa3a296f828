package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/appointment"
	"github.com/primobarber/PB-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
// Создание записи живет в отдельном usecase (create_appointment):
// там проверки конфликтов, здесь только чтение и администрирование
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List получает записи с фильтрацией по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, status=%v, limit=%d", req.Status, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// Update частично обновляет запись (статус, дата, время, заметки)
// Перевод в cancelled освобождает слот; перенос на занятый слот
// отклоняется ограничением уникальности
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%s", id)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appt, err := s.appointmentRepo.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Update: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrSlotTaken):
			s.logger.Warn("Update: target slot taken for id=%s", id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("Update: repository error for id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated appointment id=%s, status=%s", id, appt.Status)
	return models.FromDomainAppointment(appt), nil
}

// Delete физически удаляет запись
// Для освобождения слота с сохранением истории предпочтителен
// перевод статуса в cancelled через Update
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}
