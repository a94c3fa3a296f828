package update_appointment

import (
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/internal/service/appointments/models"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// UpdateAppointmentRequest HTTP модель частичного обновления записи
type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Notes  *string `json:"notes"`
}

// ToServiceRequest парсит дату и время и формирует запрос к сервису
func (r *UpdateAppointmentRequest) ToServiceRequest() (*models.UpdateAppointmentRequest, error) {
	req := &models.UpdateAppointmentRequest{
		Status: r.Status,
		Notes:  r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = &t
	}

	return req, nil
}
