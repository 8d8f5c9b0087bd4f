// Package notifier pushes order alerts to the page owner over Telegram.
// Notifications are fire-and-forget; failures never affect request
// processing.
package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/config"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// Bot sends order notifications through the Telegram Bot API.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewBot creates a new Telegram notifier. Returns (nil, nil) when the
// notifier is disabled in config.
func NewBot(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	if !cfg.Notifier.Enabled || cfg.Notifier.TelegramBotToken == "" {
		logger.Info("Telegram notifier is disabled (notifier.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Notifier.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram notifier authorized", zap.String("username", botAPI.Self.UserName))

	return &Bot{
		api:    botAPI,
		chatID: cfg.Notifier.ChatID,
		logger: logger,
	}, nil
}

// OrderCreated notifies the configured chat about a new order, flagging
// high fraud scores.
func (b *Bot) OrderCreated(order *models.Order) {
	if b == nil {
		return
	}

	text := fmt.Sprintf(
		"🛒 New order %s\nCustomer: %s\nPhone: %s\nTotal: %s\nStatus: %s",
		order.InvoiceNumber, order.CustomerName, order.CustomerPhone,
		order.Total.String(), order.Status)
	if order.FakeOrderScore > 50 {
		text += fmt.Sprintf("\n⚠️ High fake-order score: %d — review before shipping", order.FakeOrderScore)
	}

	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send order notification",
			zap.Error(err),
			zap.String("invoice_number", order.InvoiceNumber))
	}
}
