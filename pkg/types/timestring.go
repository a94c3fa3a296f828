package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeLayout формат времени "HH:MM" (24-часовой)
const timeLayout = "15:04"

// ErrInvalidFormat возвращается при некорректном формате строки времени
var ErrInvalidFormat = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" (например, "10:00")
// Хранится в БД как TIME, в JSON как строка
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются несравнимыми (false)
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает время через m минут (по модулю суток)
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(timeLayout)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TIME (time.Time), текстовые значения "HH:MM" и "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		*t = truncateSeconds(string(v))
	case string:
		*t = truncateSeconds(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
	return t.Validate()
}

// truncateSeconds отбрасывает секунды из "HH:MM:SS"
func truncateSeconds(s string) TimeString {
	if strings.Count(s, ":") == 2 {
		return TimeString(s[:strings.LastIndex(s, ":")])
	}
	return TimeString(s)
}
