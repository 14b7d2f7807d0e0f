// internal/adapters/telegram/messenger.go
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// MaxMessageLength is the Telegram limit for a single text message
const MaxMessageLength = 4096

// Messenger sends shared lists to Telegram chats
type Messenger struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

var _ ports.Messenger = (*Messenger)(nil)

// NewMessenger authorizes the bot against the public Bot API
func NewMessenger(token string, logger *slog.Logger) (*Messenger, error) {
	return NewMessengerWithEndpoint(token, tgbotapi.APIEndpoint, http.DefaultClient, logger)
}

// NewMessengerWithEndpoint authorizes the bot against a custom endpoint, in
// the "https://host/bot%s/%s" form used by tgbotapi.
func NewMessengerWithEndpoint(token, endpoint string, client *http.Client, logger *slog.Logger) (*Messenger, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	l := logger.With(slog.String("adapter", "telegram"))
	l.Info("telegram bot authorized", slog.String("username", api.Self.UserName))

	return &Messenger{api: api, logger: l}, nil
}

// Send delivers text to chatID, split into several messages when it is too long
func (m *Messenger) Send(ctx context.Context, chatID int64, text string) error {
	for i, part := range SplitMessage(text, MaxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}

		sent, err := m.api.Send(tgbotapi.NewMessage(chatID, part))
		if err != nil {
			return fmt.Errorf("failed to send telegram message part %d: %w", i+1, err)
		}

		m.logger.DebugContext(ctx, "telegram message sent",
			slog.Int64("chat_id", chatID),
			slog.Int("message_id", sent.MessageID))
	}
	return nil
}

// SplitMessage breaks text into chunks of at most limit runes, preferring
// line boundaries so that list entries stay whole.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		lineLen := utf8.RuneCountInString(line)
		if currentLen+lineLen > limit {
			flush()
		}
		for lineLen > limit {
			runes := []rune(line)
			parts = append(parts, string(runes[:limit]))
			line = string(runes[limit:])
			lineLen -= limit
		}
		current.WriteString(line)
		currentLen += lineLen
	}
	flush()

	return parts
}
