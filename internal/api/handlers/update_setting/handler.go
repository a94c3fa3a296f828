package update_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные настройки"
	msgSettingNotFound    = "настройка не найдена"
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

// Handle PUT /api/settings/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req UpdateSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/{key} - Invalid request body: key=%s, error=%v", key, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), key, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingNotFound):
			h.logger.Warn("PUT /settings/{key} - Not found: key=%s", key)
			handlers.RespondNotFound(w, msgSettingNotFound)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings/{key} - Invalid input: key=%s, error=%v", key, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /settings/{key} - Failed to update setting: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/{key} - Setting updated: key=%s", key)
	handlers.RespondJSON(w, http.StatusOK, result)
}
