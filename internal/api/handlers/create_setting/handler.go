package create_setting

import (
	"errors"
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные настройки"
	msgSettingExists      = "настройка с таким ключом уже существует"
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

// Handle POST /api/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSettingRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("POST /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingExists):
			h.logger.Warn("POST /settings - Key exists: key=%s", req.Key)
			handlers.RespondConflict(w, msgSettingExists)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("POST /settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /settings - Failed to create setting: key=%s, error=%v", req.Key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /settings - Setting created: key=%s", result.Key)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
