package create_working_hours

import (
	"errors"
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные правила рабочих часов"
	msgWorkingHoursExists = "правило для этого дня недели уже существует"
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

// Handle POST /api/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkingHoursRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateWorkingHours(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingHoursExists):
			h.logger.Warn("POST /working-hours - Rule exists: day=%d", req.DayOfWeek)
			handlers.RespondConflict(w, msgWorkingHoursExists)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /working-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /working-hours - Failed to create rule: day=%d, error=%v", req.DayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours - Rule created: id=%s, day=%d", result.ID, result.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
