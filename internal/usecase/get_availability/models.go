package get_availability

import (
	"time"

	"github.com/primobarber/PB-BookingService/pkg/types"
)

// Request модель запроса доступных слотов на дату
// Дата валидируется на границе API: сюда приходит уже распарсенное значение
type Request struct {
	Date time.Time
}

// Response модель ответа со слотами, доступными для записи
type Response struct {
	Date           time.Time          // Дата, на которую запрашивались слоты
	AvailableTimes []types.TimeString // Свободные слоты в порядке генерации
	Blocked        bool               // true, если дата заблокирована
	Reason         *string            // Причина блокировки (опционально)
}
