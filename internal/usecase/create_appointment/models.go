package create_appointment

import (
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName             string
	ClientPhone            string
	ClientTelegramUsername *string
	ServiceID              string
	Date                   time.Time        // Дата записи (без времени)
	Time                   types.TimeString // Время начала слота ("10:00")
	Notes                  *string
	Source                 domain.AppointmentSource // Канал создания: web или telegram
}

// Response модель ответа с созданной записью
type Response struct {
	ID                     string
	ClientName             string
	ClientPhone            string
	ClientTelegramUsername *string
	ServiceID              string
	Date                   time.Time
	Time                   types.TimeString
	Notes                  *string
	Status                 string
	Source                 string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// fromDomain конвертирует доменную модель в response
func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:                     appt.ID,
		ClientName:             appt.ClientName,
		ClientPhone:            appt.ClientPhone,
		ClientTelegramUsername: appt.ClientTelegramUsername,
		ServiceID:              appt.ServiceID,
		Date:                   appt.Date,
		Time:                   appt.Time,
		Notes:                  appt.Notes,
		Status:                 string(appt.Status),
		Source:                 string(appt.Source),
		CreatedAt:              appt.CreatedAt,
		UpdatedAt:              appt.UpdatedAt,
	}
}
