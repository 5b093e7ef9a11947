package model

import "time"

// Language supported request languages
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageKazakh  Language = "kz"
)

// Priority request priority levels, lowest to highest
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities all priority levels in declaration order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Ticket statuses
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosedAuto = "closed_auto"
)

// Ticket persisted support ticket
type Ticket struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	Language       Language  `json:"language"`
	Category       string    `json:"category"`
	Priority       Priority  `json:"priority"`
	Department     string    `json:"department"`
	Status         string    `json:"status"`
	Summary        string    `json:"summary"`
	SuggestedReply string    `json:"suggestedReply"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
