package model

// IngestRequest inbound support request
type IngestRequest struct {
	Text     string   `json:"text" binding:"required"`
	Subject  string   `json:"subject,omitempty"`
	Language Language `json:"language,omitempty"` // explicit override, empty = detect
}

// IngestResponse result of one ingest call
type IngestResponse struct {
	Status         string   `json:"status"` // closed_auto, new
	TicketID       string   `json:"ticketId"`
	Answer         string   `json:"answer,omitempty"`
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Department     string   `json:"department"`
	Summary        string   `json:"summary"`
	SuggestedReply string   `json:"suggestedReply,omitempty"`
	Language       Language `json:"language"`
}

// AIHelpResponse instant help answer, nothing persisted
type AIHelpResponse struct {
	Solution string   `json:"solution"`
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Language Language `json:"language"`
	HasFAQ   bool     `json:"hasFaq"`
}

// UpdateStatusRequest operator status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Metrics helpdesk counters
type Metrics struct {
	Total        int            `json:"total"`
	AutoResolved int            `json:"autoResolved"`
	Manual       int            `json:"manual"`
	ByCategory   map[string]int `json:"byCategory"`
	ByStatus     map[string]int `json:"byStatus"`
	ByPriority   map[string]int `json:"byPriority"`
}
