package list_working_hours

import (
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to list working hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /working-hours - Listed %d rules", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
