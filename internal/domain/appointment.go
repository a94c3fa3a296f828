package domain

import (
	"time"

	"github.com/primobarber/PB-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// AppointmentSource represents the channel an appointment was created from
type AppointmentSource string

const (
	SourceWeb      AppointmentSource = "web"
	SourceTelegram AppointmentSource = "telegram"
)

// Appointment represents a client booking for a single time slot
type Appointment struct {
	ID                     string
	ClientName             string
	ClientPhone            string
	ClientTelegramUsername *string
	ServiceID              string
	Date                   time.Time // calendar date, time-of-day zeroed
	Time                   types.TimeString
	Notes                  *string
	Status                 AppointmentStatus
	Source                 AppointmentSource

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot.
// Cancelled appointments free the slot for rebooking
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// ValidStatus reports whether s is one of the known appointment statuses
func ValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ValidSource reports whether s is one of the known appointment sources
func ValidSource(s string) bool {
	switch AppointmentSource(s) {
	case SourceWeb, SourceTelegram:
		return true
	default:
		return false
	}
}

// AppointmentFilter фильтр для выборки записей
type AppointmentFilter struct {
	Status   *AppointmentStatus // Фильтр по статусу (опционально)
	DateFrom *time.Time         // Начало периода включительно (опционально)
	DateTo   *time.Time         // Конец периода включительно (опционально)
	Limit    int                // Максимум записей (0 - значение по умолчанию)
}

// AppointmentUpdate частичное обновление записи; nil поля не изменяются
type AppointmentUpdate struct {
	Status *AppointmentStatus
	Date   *time.Time
	Time   *types.TimeString
	Notes  *string
}
