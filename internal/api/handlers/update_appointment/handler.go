package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAppointmentNotFound = "запись не найдена"
	msgSlotTaken           = "выбранное время уже занято"
	msgInvalidInput        = "некорректные данные записи"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{id} - Slot taken: id=%s", id)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated: id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
