package model

import "time"

// Operator feed message types
const (
	FeedTicketCreated = "TICKET_CREATED"
	FeedAutoResolved  = "AUTO_RESOLVED"
	FeedHeartbeat     = "HEARTBEAT"
)

// FeedMessage event pushed to connected operators over WebSocket
type FeedMessage struct {
	MessageID  string    `json:"messageId"`
	Type       string    `json:"type"` // TICKET_CREATED, AUTO_RESOLVED, HEARTBEAT
	TicketID   string    `json:"ticketId,omitempty"`
	Category   string    `json:"category,omitempty"`
	Priority   Priority  `json:"priority,omitempty"`
	Department string    `json:"department,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// FeedAck acknowledgement sent back to an operator client
type FeedAck struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
}
