package create_appointment

import "errors"

var (
	// ErrDateBlocked возвращается, когда дата заблокирована для записи
	ErrDateBlocked = errors.New("create_appointment: date is blocked")

	// ErrClosed возвращается, когда на день недели нет активных рабочих часов
	ErrClosed = errors.New("create_appointment: no working hours for this day")

	// ErrSlotTaken возвращается, когда слот (date, time) уже занят
	// неотмененной записью
	ErrSlotTaken = errors.New("create_appointment: time slot already booked")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
