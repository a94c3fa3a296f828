package create_service

import (
	"errors"
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные услуги"
)

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

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /services - Failed to create service: name=%q, error=%v", req.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service created: id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
