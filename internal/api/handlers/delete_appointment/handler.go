package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/appointments"
)

const msgAppointmentNotFound = "запись не найдена"

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

// Handle DELETE /api/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("DELETE /appointments/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
