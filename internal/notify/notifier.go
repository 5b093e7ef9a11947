package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

// Notifier one outbound notification channel (telegram, email, ...)
type Notifier interface {
	Name() string
	// NotifyTicket announces a newly created operator ticket.
	NotifyTicket(ctx context.Context, ticket *model.Ticket) error
}

// Registry outbound notifier registry. Notification is best effort:
// NotifyAll logs failures and never returns them to the caller.
type Registry struct {
	notifiers map[string]Notifier
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewRegistry creates an empty notifier registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		notifiers: make(map[string]Notifier),
		logger:    logger,
	}
}

// Register adds a notifier.
func (r *Registry) Register(n Notifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.Name() == "" {
		return fmt.Errorf("notifier name cannot be empty")
	}
	if _, exists := r.notifiers[n.Name()]; exists {
		return fmt.Errorf("notifier already registered: %s", n.Name())
	}

	r.notifiers[n.Name()] = n
	r.logger.Info("notifier registered", zap.String("name", n.Name()))
	return nil
}

// List returns all registered notifiers.
func (r *Registry) List() []Notifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifiers := make([]Notifier, 0, len(r.notifiers))
	for _, n := range r.notifiers {
		notifiers = append(notifiers, n)
	}
	return notifiers
}

// Count returns the number of registered notifiers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notifiers)
}

// NotifyAll fans a new ticket out to every channel.
func (r *Registry) NotifyAll(ctx context.Context, ticket *model.Ticket) {
	for _, n := range r.List() {
		if err := n.NotifyTicket(ctx, ticket); err != nil {
			r.logger.Warn("ticket notification failed",
				zap.String("notifier", n.Name()),
				zap.String("ticketId", ticket.ID),
				zap.Error(err))
			continue
		}
		r.logger.Info("ticket notification sent",
			zap.String("notifier", n.Name()),
			zap.String("ticketId", ticket.ID))
	}
}
