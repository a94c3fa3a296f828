package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные блокировки"
	msgDateAlreadyBlocked = "дата уже заблокирована"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedDateRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlockedDate(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /blocked-dates - Already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgDateAlreadyBlocked)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /blocked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-dates - Failed to block date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Date blocked: date=%s", result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
