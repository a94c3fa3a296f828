package telegram

import "errors"

var (
	// ErrNotConfigured возвращается, когда бот не инициализирован (нет токена)
	ErrNotConfigured = errors.New("telegram.client: bot is not configured")

	// ErrSendFailed возвращается, когда сообщение не доставлено после ретраев
	ErrSendFailed = errors.New("telegram.client: failed to send message")
)
