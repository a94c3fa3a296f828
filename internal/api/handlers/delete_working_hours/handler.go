package delete_working_hours

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

// Handle DELETE /api/working-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayStr := mux.Vars(r)["dayOfWeek"]
	dayOfWeek, err := strconv.Atoi(dayStr)
	if err != nil {
		h.logger.Warn("DELETE /working-hours/{dayOfWeek} - Invalid day: %q", dayStr)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	if err := h.service.DeleteWorkingHours(r.Context(), dayOfWeek); err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /working-hours/{dayOfWeek} - Rule not found: day=%d", dayOfWeek)
			handlers.RespondNotFound(w, msgWorkingHoursMissing)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /working-hours/{dayOfWeek} - Invalid day: day=%d", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("DELETE /working-hours/{dayOfWeek} - Failed to delete rule: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /working-hours/{dayOfWeek} - Rule deleted: day=%d", dayOfWeek)
	handlers.RespondNoContent(w)
}
