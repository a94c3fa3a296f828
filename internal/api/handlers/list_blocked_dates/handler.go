package list_blocked_dates

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

// Handle GET /api/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-dates - Listed %d dates", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
