package setting

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройка не найдена
	ErrSettingNotFound = errors.New("setting.repository: setting not found")

	// ErrSettingExists возвращается при попытке создать настройку
	// с существующим ключом
	ErrSettingExists = errors.New("setting.repository: setting key already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("setting.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("setting.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("setting.repository: failed to scan row")
)
