package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// WorkingHoursResponse правило рабочих часов для HTTP ответа
type WorkingHoursResponse struct {
	ID              string `json:"id"`
	DayOfWeek       int    `json:"dayOfWeek"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	IntervalMinutes int    `json:"intervalMinutes"`
	Active          bool   `json:"active"`
}

// WorkingHoursListResponse список правил рабочих часов
type WorkingHoursListResponse struct {
	WorkingHours []*WorkingHoursResponse `json:"workingHours"`
	Total        int                     `json:"total"`
}

// UpsertWorkingHoursRequest создание или обновление правила для дня недели
type UpsertWorkingHoursRequest struct {
	DayOfWeek       int
	StartTime       string // "HH:MM"
	EndTime         string // "HH:MM"
	IntervalMinutes int
	Active          *bool // nil - правило активно по умолчанию
}

// ToDomainRule конвертирует request в доменную модель с валидацией
func (r *UpsertWorkingHoursRequest) ToDomainRule() (*domain.WorkingHoursRule, error) {
	if !domain.ValidDayOfWeek(r.DayOfWeek) {
		return nil, fmt.Errorf("dayOfWeek must be in range 0..6, got %d", r.DayOfWeek)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %v", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %v", err)
	}

	if !start.IsBefore(end) {
		return nil, errors.New("startTime must be before endTime")
	}

	if r.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("intervalMinutes must be positive, got %d", r.IntervalMinutes)
	}

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &domain.WorkingHoursRule{
		DayOfWeek:       r.DayOfWeek,
		StartTime:       start,
		EndTime:         end,
		IntervalMinutes: r.IntervalMinutes,
		Active:          active,
	}, nil
}

// FromDomainRule конвертирует доменную модель в response
func FromDomainRule(rule *domain.WorkingHoursRule) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:              rule.ID,
		DayOfWeek:       rule.DayOfWeek,
		StartTime:       rule.StartTime.String(),
		EndTime:         rule.EndTime.String(),
		IntervalMinutes: rule.IntervalMinutes,
		Active:          rule.Active,
	}
}

// FromDomainRuleList конвертирует список правил в response
func FromDomainRuleList(rules []*domain.WorkingHoursRule) *WorkingHoursListResponse {
	out := make([]*WorkingHoursResponse, len(rules))
	for i, rule := range rules {
		out[i] = FromDomainRule(rule)
	}
	return &WorkingHoursListResponse{
		WorkingHours: out,
		Total:        len(out),
	}
}

// BlockedDateResponse заблокированная дата для HTTP ответа
type BlockedDateResponse struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []*BlockedDateResponse `json:"blockedDates"`
	Total        int                    `json:"total"`
}

// CreateBlockedDateRequest блокировка даты
type CreateBlockedDateRequest struct {
	Date   string // "YYYY-MM-DD"
	Reason *string
}

// ToDomainBlockedDate конвертирует request в доменную модель с валидацией
func (r *CreateBlockedDateRequest) ToDomainBlockedDate() (*domain.BlockedDate, error) {
	if _, err := time.Parse(domain.DateFormat, r.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", r.Date)
	}

	reason := r.Reason
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if len(trimmed) > domain.MaxReasonLength {
			return nil, fmt.Errorf("reason exceeds %d characters", domain.MaxReasonLength)
		}
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	return &domain.BlockedDate{
		Date:   r.Date,
		Reason: reason,
	}, nil
}

// FromDomainBlockedDate конвертирует доменную модель в response
func FromDomainBlockedDate(bd *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		Date:   bd.Date,
		Reason: bd.Reason,
	}
}

// FromDomainBlockedDateList конвертирует список дат в response
func FromDomainBlockedDateList(dates []*domain.BlockedDate) *BlockedDateListResponse {
	out := make([]*BlockedDateResponse, len(dates))
	for i, bd := range dates {
		out[i] = FromDomainBlockedDate(bd)
	}
	return &BlockedDateListResponse{
		BlockedDates: out,
		Total:        len(out),
	}
}
