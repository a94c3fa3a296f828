package get_appointment

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

// Handle GET /api/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("GET /appointments/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
