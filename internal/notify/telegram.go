// Package notify sends best-effort booking notifications to users who
// linked a Telegram chat. Failures are logged and never propagate into the
// booking flow.
package notify

import (
	"fmt"
	"log"

	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier implements booking.Notifier over the Telegram Bot API.
type TelegramNotifier struct {
	BotAPI  *tgbotapi.BotAPI
	Storage storage.Storage
}

func NewTelegramNotifier(token string, s storage.Storage) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Notifier authorized on account %s", bot.Self.UserName)
	return &TelegramNotifier{BotAPI: bot, Storage: s}, nil
}

// BookingCreated tells the provider about a new pending request.
func (n *TelegramNotifier) BookingCreated(b *models.Booking) {
	text := fmt.Sprintf("New booking request for %s. Confirm it to unlock the chat.",
		b.BookingDate.Format("2006-01-02"))
	n.send(b.ProviderID, text)
}

// BookingStatusChanged tells the citizen their booking moved along.
func (n *TelegramNotifier) BookingStatusChanged(b *models.Booking) {
	text := fmt.Sprintf("Your booking is now %s.", b.Status)
	n.send(b.CitizenID, text)
}

func (n *TelegramNotifier) send(userID, text string) {
	user, err := n.Storage.GetUserByID(userID)
	if err != nil {
		log.Printf("WARNING: notify: failed to load user %s: %v", userID, err)
		return
	}
	if user.TelegramChatID == 0 {
		return // no linked chat
	}
	msg := tgbotapi.NewMessage(user.TelegramChatID, text)
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("WARNING: notify: failed to message user %s: %v", userID, err)
	}
}
