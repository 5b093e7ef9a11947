package model

// Classification category and priority for one request. Both fields are
// always populated: the keyword fallback guarantees a value even when the
// oracle is unavailable.
type Classification struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
}

// MatchResult best knowledge-base hit for a request. Similarity is 0 and
// both text fields are empty when nothing overlapped.
type MatchResult struct {
	BestAnswer   string  `json:"bestAnswer,omitempty"`
	BestQuestion string  `json:"bestQuestion,omitempty"`
	Similarity   float64 `json:"similarity"`
}

// Outcome terminal pipeline result. Exactly one of the two variants is
// produced per request; callers branch with a type switch.
type Outcome interface {
	// OutcomeStatus returns the ticket status the variant maps to.
	OutcomeStatus() string
}

// AutoResolved a knowledge-base answer was returned directly to the
// requester, no operator involved.
type AutoResolved struct {
	Answer     string   `json:"answer"`
	Category   string   `json:"category"`
	Priority   Priority `json:"priority"`
	Department string   `json:"department"`
	Summary    string   `json:"summary"`
	Language   Language `json:"language"`
	Similarity float64  `json:"similarity"`
}

// OutcomeStatus implements Outcome.
func (AutoResolved) OutcomeStatus() string { return StatusClosedAuto }

// TicketDraft the request needs a human operator; carries everything the
// storage layer needs to open a ticket.
type TicketDraft struct {
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Department     string   `json:"department"`
	Summary        string   `json:"summary"`
	SuggestedReply string   `json:"suggestedReply"`
	Language       Language `json:"language"`
	Similarity     float64  `json:"similarity"`
}

// OutcomeStatus implements Outcome.
func (TicketDraft) OutcomeStatus() string { return StatusNew }
