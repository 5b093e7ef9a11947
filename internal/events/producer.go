package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// TicketEvent outcome event published for downstream consumers
// (analytics, SLA monitoring)
type TicketEvent struct {
	EventType  string         `json:"eventType"` // TICKET_CREATED, AUTO_RESOLVED
	TicketID   string         `json:"ticketId"`
	Status     string         `json:"status"`
	Category   string         `json:"category"`
	Priority   model.Priority `json:"priority"`
	Department string         `json:"department"`
	Language   model.Language `json:"language"`
	Similarity float64        `json:"similarity"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Producer sends ticket events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewProducer creates a Kafka producer for the ticket events topic.
func NewProducer(brokers []string, topic string, logger *zap.Logger) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: logger,
	}
}

// PublishOutcome publishes the event for one finished pipeline run,
// keyed by ticket ID.
func (p *Producer) PublishOutcome(ctx context.Context, ticketID string, outcome model.Outcome) error {
	event := TicketEvent{
		TicketID:  ticketID,
		Status:    outcome.OutcomeStatus(),
		Timestamp: time.Now().UTC(),
	}

	switch o := outcome.(type) {
	case model.AutoResolved:
		event.EventType = model.FeedAutoResolved
		event.Category = o.Category
		event.Priority = o.Priority
		event.Department = o.Department
		event.Language = o.Language
		event.Similarity = o.Similarity
	case model.TicketDraft:
		event.EventType = model.FeedTicketCreated
		event.Category = o.Category
		event.Priority = o.Priority
		event.Department = o.Department
		event.Language = o.Language
		event.Similarity = o.Similarity
	default:
		return fmt.Errorf("unknown outcome variant %T", outcome)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal ticket event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(ticketID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write ticket event: %w", err)
	}

	p.logger.Debug("ticket event published",
		zap.String("ticketId", ticketID),
		zap.String("eventType", event.EventType))
	return nil
}

// Close closes the Kafka writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
