package delete_setting

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

// Handle DELETE /api/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := h.service.Delete(r.Context(), key); err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			h.logger.Warn("DELETE /settings/{key} - Not found: key=%s", key)
			handlers.RespondNotFound(w, msgSettingNotFound)
			return
		}
		h.logger.Error("DELETE /settings/{key} - Failed to delete setting: key=%s, error=%v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /settings/{key} - Setting deleted: key=%s", key)
	handlers.RespondNoContent(w)
}
