package get_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/settings"
)

const msgSettingNotFound = "настройка не найдена"

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

// Handle GET /api/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	result, err := h.service.GetByKey(r.Context(), key)
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			h.logger.Warn("GET /settings/{key} - Not found: key=%s", key)
			handlers.RespondNotFound(w, msgSettingNotFound)
			return
		}
		h.logger.Error("GET /settings/{key} - Failed to get setting: key=%s, error=%v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
