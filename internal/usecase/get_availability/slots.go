package get_availability

import (
	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

// generateSlots генерирует все слоты дня по правилу рабочих часов:
// от start_time с шагом interval_minutes, строго меньше end_time.
// Слот - это время НАЧАЛА записи, поэтому правая граница исключается:
// start=09:00 end=20:00 interval=60 дает 09:00..19:00, никогда 20:00.
// interval <= 0 - ошибка конфигурации: возвращаем пустой список,
// а не бесконечный цикл
func generateSlots(rule *domain.WorkingHoursRule) ([]types.TimeString, error) {
	if rule.IntervalMinutes <= 0 {
		return []types.TimeString{}, nil
	}

	if err := rule.StartTime.Validate(); err != nil {
		return nil, err
	}
	if err := rule.EndTime.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := rule.StartTime

	for current.IsBefore(rule.EndTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(rule.IntervalMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes работает по модулю суток: перенос через полночь
		// означает, что день исчерпан
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// subtractBooked исключает занятые времена из списка слотов,
// сохраняя порядок генерации
func subtractBooked(slots []types.TimeString, appointments []*domain.Appointment) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		// Отмененные записи освобождают слот
		if !appt.IsActive() {
			continue
		}
		booked[appt.Time] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available
}
