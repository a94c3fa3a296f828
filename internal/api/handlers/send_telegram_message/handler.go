package send_telegram_message

import (
	"errors"
	"net/http"

	"github.com/primobarber/PB-BookingService/internal/api/handlers"
	"github.com/primobarber/PB-BookingService/internal/integrations/telegram"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotConfigured      = "телеграм-бот не настроен"
	msgSendFailed         = "не удалось отправить сообщение"
)

type Handler struct {
	client TelegramClient
	logger Logger
}

func NewHandler(client TelegramClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/telegram/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := handlers.DecodeAndValidateJSON(r, &req); err != nil {
		h.logger.Warn("POST /telegram/send - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.client.SendMessage(r.Context(), req.ChatID, req.Text, req.ReplyMarkup); err != nil {
		if errors.Is(err, telegram.ErrNotConfigured) {
			h.logger.Warn("POST /telegram/send - Bot not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)
			return
		}
		h.logger.Error("POST /telegram/send - Failed to send: chat_id=%d, error=%v", req.ChatID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)
		return
	}

	h.logger.Info("POST /telegram/send - Message sent: chat_id=%d", req.ChatID)
	handlers.RespondJSON(w, http.StatusOK, SendMessageResponse{OK: true})
}
