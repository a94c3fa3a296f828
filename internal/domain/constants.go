package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultIntervalMinutes = 60
	DefaultListLimit       = 100
	MaxListLimit           = 500
)

// Business validation constants
const (
	MaxNotesLength  = 500
	MaxReasonLength = 200
)
