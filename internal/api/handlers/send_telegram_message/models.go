package send_telegram_message

import "encoding/json"

// SendMessageRequest HTTP модель исходящего сообщения.
// ReplyMarkup необязателен и передается в Bot API без интерпретации
type SendMessageRequest struct {
	ChatID      int64           `json:"chat_id" validate:"required"`
	Text        string          `json:"text" validate:"required"`
	ReplyMarkup json.RawMessage `json:"reply_markup"`
}

// SendMessageResponse HTTP модель результата отправки
type SendMessageResponse struct {
	OK bool `json:"ok"`
}
