package send_telegram_message

import (
	"context"
	"encoding/json"
)

type TelegramClient interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyMarkup json.RawMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
