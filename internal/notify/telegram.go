package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

// TelegramNotifier pushes new-ticket announcements to an operator channel
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier creates the notifier and verifies the bot token.
func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	logger.Info("telegram notifier connected", zap.String("botUsername", bot.Self.UserName))

	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		logger: logger,
	}, nil
}

// Name implements Notifier.
func (n *TelegramNotifier) Name() string { return "telegram" }

// NotifyTicket implements Notifier.
func (n *TelegramNotifier) NotifyTicket(ctx context.Context, ticket *model.Ticket) error {
	text := fmt.Sprintf(
		"🎫 Новая заявка %s\nКатегория: %s\nПриоритет: %s\nОтдел: %s\n\n%s",
		ticket.ID, ticket.Category, ticket.Priority, ticket.Department, ticket.Summary)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	return nil
}
