package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func rule(t *testing.T, start, end string, interval int) *domain.WorkingHoursRule {
	t.Helper()
	return &domain.WorkingHoursRule{
		DayOfWeek:       0,
		StartTime:       ts(t, start),
		EndTime:         ts(t, end),
		IntervalMinutes: interval,
		Active:          true,
	}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots, err := generateSlots(rule(t, "09:00", "20:00", 60))
	require.NoError(t, err)

	got := slotStrings(slots)
	require.Len(t, got, 11)
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "19:00", got[10])
	// Правая граница не входит: слот - это время начала
	assert.NotContains(t, got, "20:00")
}

func TestGenerateSlots_ShortMorning(t *testing.T) {
	slots, err := generateSlots(rule(t, "09:00", "12:00", 60))
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(slots))
}

func TestGenerateSlots_HalfHourInterval(t *testing.T) {
	slots, err := generateSlots(rule(t, "09:00", "11:00", 30))
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStrings(slots))
}

func TestGenerateSlots_IntervalLargerThanWindow(t *testing.T) {
	slots, err := generateSlots(rule(t, "10:00", "10:30", 60))
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slotStrings(slots))
}

func TestGenerateSlots_ZeroInterval(t *testing.T) {
	slots, err := generateSlots(rule(t, "09:00", "20:00", 0))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NegativeInterval(t *testing.T) {
	slots, err := generateSlots(rule(t, "09:00", "20:00", -15))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_MidnightWrap(t *testing.T) {
	// Перенос через полночь завершает генерацию, а не зацикливает её
	slots, err := generateSlots(rule(t, "23:00", "23:59", 60))
	require.NoError(t, err)
	assert.Equal(t, []string{"23:00"}, slotStrings(slots))
}

func TestGenerateSlots_StartEqualsEnd(t *testing.T) {
	slots, err := generateSlots(rule(t, "09:00", "09:00", 60))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSubtractBooked_RemovesActive(t *testing.T) {
	slots := []types.TimeString{ts(t, "09:00"), ts(t, "10:00"), ts(t, "11:00")}
	appointments := []*domain.Appointment{
		{Time: ts(t, "10:00"), Status: domain.StatusPending},
	}

	available := subtractBooked(slots, appointments)
	assert.Equal(t, []string{"09:00", "11:00"}, slotStrings(available))
}

func TestSubtractBooked_CancelledFreesSlot(t *testing.T) {
	slots := []types.TimeString{ts(t, "09:00"), ts(t, "10:00")}
	appointments := []*domain.Appointment{
		{Time: ts(t, "09:00"), Status: domain.StatusCancelled},
		{Time: ts(t, "10:00"), Status: domain.StatusConfirmed},
	}

	available := subtractBooked(slots, appointments)
	assert.Equal(t, []string{"09:00"}, slotStrings(available))
}

func TestSubtractBooked_PreservesOrder(t *testing.T) {
	slots := []types.TimeString{ts(t, "09:00"), ts(t, "09:30"), ts(t, "10:00"), ts(t, "10:30")}
	appointments := []*domain.Appointment{
		{Time: ts(t, "09:30"), Status: domain.StatusCompleted},
	}

	available := subtractBooked(slots, appointments)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, slotStrings(available))
}

func TestSubtractBooked_OffGridTimeIgnored(t *testing.T) {
	// Запись вне сетки не затрагивает сгенерированные слоты
	slots := []types.TimeString{ts(t, "09:00"), ts(t, "10:00")}
	appointments := []*domain.Appointment{
		{Time: ts(t, "09:17"), Status: domain.StatusPending},
	}

	available := subtractBooked(slots, appointments)
	assert.Equal(t, []string{"09:00", "10:00"}, slotStrings(available))
}
