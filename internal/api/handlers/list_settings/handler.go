package list_settings

import (
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to list settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Listed %d settings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
