package domain

import (
	"time"

	"github.com/primobarber/PB-BookingService/pkg/types"
)

// WorkingHoursRule describes opening hours and slot granularity for one
// weekday. At most one rule exists per weekday; absence of an active rule
// means the shop is closed that day
type WorkingHoursRule struct {
	ID              string
	DayOfWeek       int // 0=Monday .. 6=Sunday
	StartTime       types.TimeString
	EndTime         types.TimeString
	IntervalMinutes int
	Active          bool
}

// BlockedDate excludes a calendar date from booking regardless of any
// working-hours rule
type BlockedDate struct {
	Date   string // "YYYY-MM-DD"
	Reason *string
}

// WeekdayIndex converts a date to the weekday convention used by
// WorkingHoursRule records: Monday=0 .. Sunday=6.
// Единственное место преобразования — не дублировать арифметику по коду
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ValidDayOfWeek reports whether d is a valid weekday index
func ValidDayOfWeek(d int) bool {
	return d >= 0 && d <= 6
}
