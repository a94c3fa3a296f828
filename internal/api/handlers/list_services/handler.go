package list_services

import (
	"net/http"
	"strconv"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/catalog/models"
)

const msgInvalidActive = "некорректное значение active, ожидается true или false"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/services
// Query params: active (optional, true/false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListServicesRequest{}

	if activeStr := r.URL.Query().Get("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			h.logger.Warn("GET /services - Invalid active param: %q", activeStr)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		req.Active = &active
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Listed %d services", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
