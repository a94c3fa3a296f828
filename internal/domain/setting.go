package domain

import "time"

// SettingType declared value-type tag for client-side interpretation.
// The value itself is stored as a string and is not validated against the tag
type SettingType string

const (
	SettingString  SettingType = "string"
	SettingNumber  SettingType = "number"
	SettingBoolean SettingType = "boolean"
	SettingJSON    SettingType = "json"
)

// ValidSettingType reports whether t is one of the declared type tags
func ValidSettingType(t SettingType) bool {
	switch t {
	case SettingString, SettingNumber, SettingBoolean, SettingJSON:
		return true
	}
	return false
}

// Setting represents a key/value configuration entry
type Setting struct {
	ID        string
	Key       string
	Value     string
	Type      SettingType
	UpdatedAt time.Time
}

// SettingUpdate частичное обновление настройки; Type опционален
type SettingUpdate struct {
	Value string
	Type  *SettingType
}
