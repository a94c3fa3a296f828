package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда правило для дня недели не найдено
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrWorkingHoursExists возвращается при попытке создать второе правило для дня
	ErrWorkingHoursExists = errors.New("working hours already exist for this day")

	// ErrBlockedDateNotFound возвращается, когда заблокированная дата не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке даты
	ErrDateAlreadyBlocked = errors.New("date already blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
