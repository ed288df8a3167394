package notification

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"turfBooker/internal/lib/logger/sl"
	"turfBooker/internal/models"
)

// TelegramNotifier forwards booking completion signals to a facility chat.
// An empty token disables it without failing startup.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

func NewTelegramNotifier(token string, chatID int64, log *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, log: log}, nil
}

func (n *TelegramNotifier) BookingCreated(b models.Booking) {
	if n.bot == nil {
		n.log.Debug("notification skipped (bot disabled)", slog.String("booking_id", b.ID))
		return
	}

	text := fmt.Sprintf(
		"*New booking*\n\nSport: %s\nDate: %s\nSlots: %s\nName: %s\nPhone: %s\nTotal: %d",
		b.Sport,
		b.Date,
		strings.Join(b.Slots, ", "),
		b.FullName,
		b.Phone,
		b.TotalPrice,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.log.Error("failed to send telegram notification", sl.Err(err))
	}
}
