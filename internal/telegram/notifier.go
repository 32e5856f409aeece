// Package telegram sends knowledge base notifications to a single chat.
package telegram

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLen is the Telegram limit for one text message.
const maxMessageLen = 4096

var ErrNotConfigured = errors.New("telegram notifier is not configured")

type Notifier struct {
	s      sender
	chatID int64
}

// NewNotifier connects to the Bot API. An empty token or zero chat id yields
// ErrNotConfigured so callers can run without notifications.
func NewNotifier(botToken string, chatID int64) (*Notifier, error) {
	if botToken == "" || chatID == 0 {
		return nil, ErrNotConfigured
	}
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot api: %w", err)
	}
	return &Notifier{s: botAPISender{api: api}, chatID: chatID}, nil
}

// Notify sends text, split into several messages when it is too long.
// A nil notifier is a no-op.
func (n *Notifier) Notify(text string) error {
	if n == nil {
		return nil
	}
	for _, part := range splitMessage(text, maxMessageLen) {
		if _, err := n.s.Send(tgbotapi.NewMessage(n.chatID, part)); err != nil {
			log.Printf("❌ Failed to send telegram message: %v", err)
			return fmt.Errorf("send telegram message: %w", err)
		}
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit runes, preferring line
// boundaries.
func splitMessage(text string, limit int) []string {
	if text == "" {
		return nil
	}
	var parts []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
			curLen = 0
		}
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}
		if curLen+len(runes) > limit {
			flush()
		}
		cur.WriteString(string(runes))
		curLen += len(runes)
	}
	flush()
	return parts
}
