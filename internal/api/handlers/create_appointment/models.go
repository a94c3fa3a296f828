package create_appointment

import (
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	createAppointment "github.com/primobarber/PB-BookingService/internal/usecase/create_appointment"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP модель запроса на создание записи
type CreateAppointmentRequest struct {
	ClientName             string  `json:"clientName" validate:"required"`
	ClientPhone            string  `json:"clientPhone" validate:"required"`
	ClientTelegramUsername *string `json:"clientTelegramUsername"`
	ServiceID              string  `json:"serviceId" validate:"required"`
	Date                   string  `json:"date" validate:"required"`
	Time                   string  `json:"time" validate:"required"`
	Notes                  *string `json:"notes"`
	Source                 string  `json:"source"`
}

// AppointmentResponse HTTP модель созданной записи
type AppointmentResponse struct {
	ID                     string  `json:"id"`
	ClientName             string  `json:"clientName"`
	ClientPhone            string  `json:"clientPhone"`
	ClientTelegramUsername *string `json:"clientTelegramUsername"`
	ServiceID              string  `json:"serviceId"`
	Date                   string  `json:"date"`
	Time                   string  `json:"time"`
	Notes                  *string `json:"notes"`
	Status                 string  `json:"status"`
	Source                 string  `json:"source"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

// ToUseCaseRequest парсит дату и время и формирует запрос к use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:             r.ClientName,
		ClientPhone:            r.ClientPhone,
		ClientTelegramUsername: r.ClientTelegramUsername,
		ServiceID:              r.ServiceID,
		Date:                   date,
		Time:                   t,
		Notes:                  r.Notes,
		Source:                 domain.AppointmentSource(r.Source),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                     result.ID,
		ClientName:             result.ClientName,
		ClientPhone:            result.ClientPhone,
		ClientTelegramUsername: result.ClientTelegramUsername,
		ServiceID:              result.ServiceID,
		Date:                   result.Date.Format(domain.DateFormat),
		Time:                   result.Time.String(),
		Notes:                  result.Notes,
		Status:                 result.Status,
		Source:                 result.Source,
		CreatedAt:              result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              result.UpdatedAt.Format(time.RFC3339),
	}
}
