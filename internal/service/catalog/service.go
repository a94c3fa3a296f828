package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	svcRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/service"
	"github.com/primobarber/PB-BookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг барбершопа
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List получает список услуг с опциональным фильтром по активности
func (s *Service) List(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, active=%v", req.Active)

	services, err := s.serviceRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%s", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, svcRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	svc, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", svc.ID)
	return models.FromDomainService(svc), nil
}

// Update частично обновляет услугу; nil поля не меняются
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s", id)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: invalid request for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	svc, err := s.serviceRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, svcRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(svc), nil
}

// Delete физически удаляет услугу
// Существующие записи сохраняют ссылку на удаленную услугу: при подсчете
// выручки такие записи учитываются с нулевой стоимостью
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting service id=%s", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, svcRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}

func validateCreateRequest(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.Price < 0 {
		return errors.New("price must be non-negative")
	}
	return nil
}

func validateUpdateRequest(req *models.UpdateServiceRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errors.New("name must not be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		return errors.New("price must be non-negative")
	}
	return nil
}
