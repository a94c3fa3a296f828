package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// SettingResponse настройка для HTTP ответа
type SettingResponse struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// SettingListResponse список настроек
type SettingListResponse struct {
	Settings []*SettingResponse `json:"settings"`
	Total    int                `json:"total"`
}

// CreateSettingRequest создание настройки
type CreateSettingRequest struct {
	Key   string
	Value string
	Type  string // пустая строка - string по умолчанию
}

// UpdateSettingRequest обновление настройки по ключу
type UpdateSettingRequest struct {
	Value string
	Type  *string
}

// ToDomainSetting конвертирует request в доменную модель с валидацией
func (r *CreateSettingRequest) ToDomainSetting() (*domain.Setting, error) {
	key := strings.TrimSpace(r.Key)
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}

	t := domain.SettingString
	if r.Type != "" {
		t = domain.SettingType(r.Type)
		if !domain.ValidSettingType(t) {
			return nil, fmt.Errorf("invalid type %q", r.Type)
		}
	}

	return &domain.Setting{
		Key:   key,
		Value: r.Value,
		Type:  t,
	}, nil
}

// ToDomainUpdate конвертирует request в доменное обновление с валидацией
func (r *UpdateSettingRequest) ToDomainUpdate() (domain.SettingUpdate, error) {
	update := domain.SettingUpdate{Value: r.Value}

	if r.Type != nil {
		t := domain.SettingType(*r.Type)
		if !domain.ValidSettingType(t) {
			return domain.SettingUpdate{}, fmt.Errorf("invalid type %q", *r.Type)
		}
		update.Type = &t
	}

	return update, nil
}

// FromDomainSetting конвертирует доменную модель в response
func FromDomainSetting(s *domain.Setting) *SettingResponse {
	return &SettingResponse{
		ID:        s.ID,
		Key:       s.Key,
		Value:     s.Value,
		Type:      string(s.Type),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSettingList конвертирует список настроек в response
func FromDomainSettingList(settings []*domain.Setting) *SettingListResponse {
	out := make([]*SettingResponse, len(settings))
	for i, s := range settings {
		out[i] = FromDomainSetting(s)
	}
	return &SettingListResponse{
		Settings: out,
		Total:    len(out),
	}
}
