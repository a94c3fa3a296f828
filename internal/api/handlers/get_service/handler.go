package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/catalog"
)

const msgServiceNotFound = "услуга не найдена"

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

// Handle GET /api/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
