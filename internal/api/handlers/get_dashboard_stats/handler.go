package get_dashboard_stats

import (
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to build stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - Stats built: total=%d", result.TotalAppointments)
	handlers.RespondJSON(w, http.StatusOK, result)
}
