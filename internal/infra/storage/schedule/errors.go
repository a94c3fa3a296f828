package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда правило рабочих часов не найдено
	ErrWorkingHoursNotFound = errors.New("schedule.repository: working hours not found")

	// ErrWorkingHoursExists возвращается при попытке создать второе правило
	// на тот же день недели
	ErrWorkingHoursExists = errors.New("schedule.repository: working hours already exist for this day")

	// ErrBlockedDateNotFound возвращается, когда заблокированная дата не найдена
	ErrBlockedDateNotFound = errors.New("schedule.repository: blocked date not found")

	// ErrDateAlreadyBlocked возвращается при попытке повторно заблокировать дату
	ErrDateAlreadyBlocked = errors.New("schedule.repository: date already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
