package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-26", 0}, // понедельник
		{"2026-01-27", 1}, // вторник
		{"2026-01-30", 4}, // пятница
		{"2026-01-31", 5}, // суббота
		{"2026-02-01", 6}, // воскресенье
	}

	for _, tt := range tests {
		d, err := time.Parse(DateFormat, tt.date)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, WeekdayIndex(d), "date %s", tt.date)
	}
}

func TestValidDayOfWeek(t *testing.T) {
	for d := 0; d <= 6; d++ {
		assert.True(t, ValidDayOfWeek(d))
	}
	assert.False(t, ValidDayOfWeek(-1))
	assert.False(t, ValidDayOfWeek(7))
}

func TestAppointmentIsActive(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		appt := &Appointment{Status: status}
		assert.True(t, appt.IsActive(), "status %s", status)
	}

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
}
