package delete_service

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

// Handle DELETE /api/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("DELETE /services/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /services/{id} - Failed to delete service: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
