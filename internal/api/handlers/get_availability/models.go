package get_availability

import (
	"time"

	"github.com/primobarber/PB-BookingService/internal/domain"
	getAvailability "github.com/primobarber/PB-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP модель ответа со свободными слотами
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
	Blocked        bool     `json:"blocked"`
	Reason         *string  `json:"reason,omitempty"`
}

// ToUseCaseRequest парсит дату и формирует запрос к use case
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailability.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getAvailability.Response) *AvailabilityResponse {
	times := make([]string, len(result.AvailableTimes))
	for i, t := range result.AvailableTimes {
		times[i] = t.String()
	}
	return &AvailabilityResponse{
		Date:           result.Date.Format(domain.DateFormat),
		AvailableTimes: times,
		Blocked:        result.Blocked,
		Reason:         result.Reason,
	}
}
