package create_appointment

import (
	"fmt"

	"github.com/primobarber/PB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Source != "" && !domain.ValidSource(string(req.Source)) {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	return nil
}
