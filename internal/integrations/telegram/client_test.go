package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockBotAPI struct {
	failures int // сколько первых вызовов завершить ошибкой
	calls    int
	sent     []tgbotapi.Chattable
}

func (m *mockBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.calls++
	m.sent = append(m.sent, c)
	if m.calls <= m.failures {
		return tgbotapi.Message{}, errors.New("telegram: bad gateway")
	}
	return tgbotapi.Message{}, nil
}

func newTestClient(bot botAPI) *Client {
	return &Client{bot: bot, logger: nopLogger{}, delay: time.Millisecond}
}

func TestSendMessage_NotConfiguredWithoutToken(t *testing.T) {
	client, err := New("", nopLogger{})
	require.NoError(t, err)

	err = client.SendMessage(context.Background(), 42, "привет", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendMessage_RetriesUntilSuccess(t *testing.T) {
	bot := &mockBotAPI{failures: 2}
	client := newTestClient(bot)

	err := client.SendMessage(context.Background(), 42, "привет", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, bot.calls)
}

func TestSendMessage_FailsAfterAllRetries(t *testing.T) {
	bot := &mockBotAPI{failures: sendRetries}
	client := newTestClient(bot)

	err := client.SendMessage(context.Background(), 42, "привет", nil)
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Equal(t, sendRetries, bot.calls)
}

func TestSendMessage_CancelledContextStopsBackoff(t *testing.T) {
	bot := &mockBotAPI{failures: sendRetries}
	client := &Client{bot: bot, logger: nopLogger{}, delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := client.SendMessage(ctx, 42, "привет", nil)

	assert.ErrorIs(t, err, ErrSendFailed)
	// Отмена контекста прерывает паузу между ретраями, а не пережидает ее
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, bot.calls)
}

func TestSendMessage_ForwardsReplyMarkup(t *testing.T) {
	bot := &mockBotAPI{}
	client := newTestClient(bot)

	markup := json.RawMessage(`{"inline_keyboard":[[{"text":"Confirmar","callback_data":"confirm"}]]}`)
	err := client.SendMessage(context.Background(), 42, "привет", markup)
	require.NoError(t, err)

	require.Len(t, bot.sent, 1)
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Equal(t, markup, msg.ReplyMarkup)
}

func TestSendMessage_NoMarkupLeavesFieldEmpty(t *testing.T) {
	bot := &mockBotAPI{}
	client := newTestClient(bot)

	require.NoError(t, client.SendMessage(context.Background(), 42, "привет", nil))

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Nil(t, msg.ReplyMarkup)
}
