package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/schedule"
)

const (
	msgInvalidDayOfWeek    = "некорректный день недели, ожидается число 0..6"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные правила рабочих часов"
	msgWorkingHoursMissing = "правило для этого дня недели не найдено"
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

// Handle PUT /api/working-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayStr := mux.Vars(r)["dayOfWeek"]
	dayOfWeek, err := strconv.Atoi(dayStr)
	if err != nil {
		h.logger.Warn("PUT /working-hours/{dayOfWeek} - Invalid day: %q", dayStr)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours/{dayOfWeek} - Invalid request body: day=%d, error=%v", dayOfWeek, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWorkingHours(r.Context(), dayOfWeek, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingHoursNotFound):
			h.logger.Warn("PUT /working-hours/{dayOfWeek} - Rule not found: day=%d", dayOfWeek)
			handlers.RespondNotFound(w, msgWorkingHoursMissing)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /working-hours/{dayOfWeek} - Invalid input: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /working-hours/{dayOfWeek} - Failed to update rule: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours/{dayOfWeek} - Rule updated: day=%d", dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, result)
}
