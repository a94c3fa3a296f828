package models

import (
	"fmt"
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// AppointmentResponse модель записи для HTTP ответа
type AppointmentResponse struct {
	ID                     string  `json:"id"`
	ClientName             string  `json:"clientName"`
	ClientPhone            string  `json:"clientPhone"`
	ClientTelegramUsername *string `json:"clientTelegramUsername,omitempty"`
	ServiceID              string  `json:"serviceId"`
	Date                   string  `json:"date"`
	Time                   string  `json:"time"`
	Notes                  *string `json:"notes,omitempty"`
	Status                 string  `json:"status"`
	Source                 string  `json:"source"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// ListAppointmentsRequest параметры выборки записей
type ListAppointmentsRequest struct {
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

// UpdateAppointmentRequest частичное обновление записи
type UpdateAppointmentRequest struct {
	Status *string
	Date   *time.Time
	Time   *types.TimeString
	Notes  *string
}

// ToDomainFilter конвертирует request в доменный фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
		Limit:    r.Limit,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.AppointmentFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainUpdate конвертирует request в доменное обновление
func (r *UpdateAppointmentRequest) ToDomainUpdate() (domain.AppointmentUpdate, error) {
	update := domain.AppointmentUpdate{
		Date:  r.Date,
		Time:  r.Time,
		Notes: r.Notes,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.AppointmentUpdate{}, err
		}
		update.Status = &status
	}

	return update, nil
}

// ToDomainStatus конвертирует строку в доменный статус записи
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	if !domain.ValidStatus(s) {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return domain.AppointmentStatus(s), nil
}

// FromDomainAppointment конвертирует доменную модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                     appt.ID,
		ClientName:             appt.ClientName,
		ClientPhone:            appt.ClientPhone,
		ClientTelegramUsername: appt.ClientTelegramUsername,
		ServiceID:              appt.ServiceID,
		Date:                   appt.Date.Format(domain.DateFormat),
		Time:                   appt.Time.String(),
		Notes:                  appt.Notes,
		Status:                 string(appt.Status),
		Source:                 string(appt.Source),
		CreatedAt:              appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              appt.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		out[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
