package get_availability

import (
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /availability - Failed to compute availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Computed availability: date=%s, slots=%d, blocked=%t",
		dateStr, len(result.AvailableTimes), result.Blocked)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
