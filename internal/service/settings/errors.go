package settings

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройка не найдена
	ErrSettingNotFound = errors.New("setting not found")

	// ErrSettingExists возвращается при создании настройки с существующим ключом
	ErrSettingExists = errors.New("setting key already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
