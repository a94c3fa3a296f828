package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	sendRetries = 3
	retryDelay  = time.Second
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// botAPI часть Bot API, используемая клиентом
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Client исходящий канал уведомлений через Telegram Bot API.
// Входящие сообщения не обрабатываются: только отправка
type Client struct {
	bot    botAPI
	logger Logger
	delay  time.Duration
}

// New создает клиент по токену бота. Пустой токен допустим:
// клиент создается неактивным и отвечает ErrNotConfigured на отправку
func New(token string, logger Logger) (*Client, error) {
	if token == "" {
		logger.Warn("telegram: bot token is empty, notifications disabled")
		return &Client{logger: logger, delay: retryDelay}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to init bot: %w", err)
	}

	logger.Info("telegram: bot authorized as @%s", bot.Self.UserName)
	return &Client{bot: bot, logger: logger, delay: retryDelay}, nil
}

// SendMessage отправляет текст в чат с ретраями. Необязательный replyMarkup
// (инлайн-клавиатура и т.п.) пробрасывается в Bot API как есть
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyMarkup json.RawMessage) error {
	if c.bot == nil {
		return ErrNotConfigured
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(replyMarkup) > 0 {
		msg.ReplyMarkup = replyMarkup
	}

	var lastErr error
	for i := 0; i < sendRetries; i++ {
		if _, lastErr = c.bot.Send(msg); lastErr == nil {
			return nil
		}
		c.logger.Warn("telegram: send failed, chat_id=%d, retry=%d: %v", chatID, i+1, lastErr)

		if i < sendRetries-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrSendFailed, ctx.Err())
			case <-time.After(c.delay << i):
			}
		}
	}

	c.logger.Error("telegram: send permanently failed, chat_id=%d: %v", chatID, lastErr)
	return fmt.Errorf("%w: %v", ErrSendFailed, lastErr)
}
