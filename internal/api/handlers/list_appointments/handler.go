package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/internal/service/appointments"
	"github.com/primobarber/PB-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "некорректный статус записи"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidLimit  = "некорректный limit"
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments
// Query params: status, dateFrom, dateTo (YYYY-MM-DD), limit - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	query := r.URL.Query()

	if statusStr := query.Get("status"); statusStr != "" {
		if !domain.ValidStatus(statusStr) {
			h.logger.Warn("GET /appointments - Invalid status: %q", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &statusStr
	}

	if fromStr := query.Get("dateFrom"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid dateFrom: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.DateFrom = &from
	}

	if toStr := query.Get("dateTo"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid dateTo: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.DateTo = &to
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /appointments - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
