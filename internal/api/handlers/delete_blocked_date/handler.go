package delete_blocked_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/service/schedule"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBlockedDateNotFound = "заблокированная дата не найдена"
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

// Handle DELETE /api/blocked-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.DeleteBlockedDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /blocked-dates/{date} - Not found: date=%s", date)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /blocked-dates/{date} - Invalid date: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /blocked-dates/{date} - Failed to unblock date: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-dates/{date} - Date unblocked: date=%s", date)
	handlers.RespondNoContent(w)
}
