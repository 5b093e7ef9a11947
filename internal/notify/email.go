package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/onewindow/helpdesk-go/internal/config"
	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

// EmailNotifier sends new-ticket announcements over SMTP
type EmailNotifier struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

// NewEmailNotifier creates the notifier. The connection is made per send.
func NewEmailNotifier(cfg config.SMTPConfig, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, logger: logger}
}

// Name implements Notifier.
func (n *EmailNotifier) Name() string { return "email" }

// NotifyTicket implements Notifier.
func (n *EmailNotifier) NotifyTicket(ctx context.Context, ticket *model.Ticket) error {
	subject := fmt.Sprintf("[HelpDesk] Новая заявка %s (%s, %s)", ticket.ID, ticket.Category, ticket.Priority)

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", n.cfg.To)
	fmt.Fprintf(&body, "Subject: %s\r\n", subject)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	fmt.Fprintf(&body, "Категория: %s\nПриоритет: %s\nОтдел: %s\n\n%s\n\nПредлагаемый ответ:\n%s\n",
		ticket.Category, ticket.Priority, ticket.Department, ticket.Summary, ticket.SuggestedReply)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.From, n.cfg.Password, n.cfg.Host)

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{n.cfg.To}, []byte(body.String())); err != nil {
		return fmt.Errorf("send email notification: %w", err)
	}
	return nil
}
