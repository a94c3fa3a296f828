package create_appointment

import (
	"errors"
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	createAppointment "github.com/primobarber/PB-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgDateBlocked        = "дата недоступна для записи"
	msgClosed             = "барбершоп закрыт в выбранный день"
	msgSlotTaken          = "выбранное время уже занято"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrDateBlocked):
			h.logger.Warn("POST /appointments - Date blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, createAppointment.ErrClosed):
			h.logger.Warn("POST /appointments - Closed: date=%s", req.Date)
			handlers.RespondConflict(w, msgClosed)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
