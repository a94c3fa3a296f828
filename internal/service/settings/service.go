package settings

import (
	"context"
	"errors"
	"fmt"

	settingRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/setting"
	"github.com/primobarber/PB-BookingService/internal/service/settings/models"
)

// Service сервис настроек приложения
type Service struct {
	settingRepo SettingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingRepo SettingRepository, logger Logger) *Service {
	return &Service{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// List получает все настройки
func (s *Service) List(ctx context.Context) (*models.SettingListResponse, error) {
	s.logger.Info("List: fetching settings")

	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettingList(settings), nil
}

// GetByKey получает настройку по ключу
func (s *Service) GetByKey(ctx context.Context, key string) (*models.SettingResponse, error) {
	s.logger.Info("GetByKey: fetching setting key=%s", key)

	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			s.logger.Warn("GetByKey: setting key=%s not found", key)
			return nil, ErrSettingNotFound
		}
		s.logger.Error("GetByKey: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: GetByKey - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSetting(setting), nil
}

// Create создает новую настройку
func (s *Service) Create(ctx context.Context, req *models.CreateSettingRequest) (*models.SettingResponse, error) {
	s.logger.Info("Create: creating setting key=%s", req.Key)

	setting, err := req.ToDomainSetting()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.settingRepo.Create(ctx, setting)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingExists) {
			s.logger.Warn("Create: setting key=%s already exists", req.Key)
			return nil, ErrSettingExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created setting key=%s", created.Key)
	return models.FromDomainSetting(created), nil
}

// Update обновляет значение настройки по ключу
func (s *Service) Update(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error) {
	s.logger.Info("Update: updating setting key=%s", key)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid request for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.settingRepo.UpdateByKey(ctx, key, update)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			s.logger.Warn("Update: setting key=%s not found", key)
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Update: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated setting key=%s", key)
	return models.FromDomainSetting(updated), nil
}

// Delete удаляет настройку по ключу
func (s *Service) Delete(ctx context.Context, key string) error {
	s.logger.Info("Delete: deleting setting key=%s", key)

	if err := s.settingRepo.DeleteByKey(ctx, key); err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			s.logger.Warn("Delete: setting key=%s not found", key)
			return ErrSettingNotFound
		}
		s.logger.Error("Delete: repository error for key=%s: %v", key, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted setting key=%s", key)
	return nil
}
