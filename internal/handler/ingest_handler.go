package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/onewindow/helpdesk-go/internal/events"
	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/notify"
	"github.com/onewindow/helpdesk-go/internal/service"
	"github.com/onewindow/helpdesk-go/internal/store"
	"go.uber.org/zap"
)

// IngestHandler entry point for inbound support requests
type IngestHandler struct {
	ingestService *service.IngestService
	ticketStore   *store.TicketStore
	answerCache   *store.AnswerCache // optional
	sessions      *service.SessionService
	producer      *events.Producer // optional
	notifiers     *notify.Registry
	logger        *zap.Logger
}

// NewIngestHandler creates the ingest handler. answerCache and producer
// may be nil.
func NewIngestHandler(
	ingestService *service.IngestService,
	ticketStore *store.TicketStore,
	answerCache *store.AnswerCache,
	sessions *service.SessionService,
	producer *events.Producer,
	notifiers *notify.Registry,
	logger *zap.Logger,
) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
		ticketStore:   ticketStore,
		answerCache:   answerCache,
		sessions:      sessions,
		producer:      producer,
		notifiers:     notifiers,
		logger:        logger,
	}
}

// Ingest processes one support request end to end: pipeline, persistence,
// operator feed, event stream and notifications.
func (h *IngestHandler) Ingest(c *gin.Context) {
	var req model.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "text is required"})
		return
	}

	if req.Subject == "" {
		req.Subject = "Request from " + truncateRunes(req.Text, 50)
	}

	outcome := h.ingestService.Ingest(c.Request.Context(), req)

	ticket := ticketFromOutcome(req, outcome)

	if err := h.ticketStore.Create(c.Request.Context(), ticket); err != nil {
		h.logger.Error("ticket persistence failed",
			zap.String("status", ticket.Status),
			zap.Error(err))
		// Auto-resolved answers are still useful without the archive record;
		// an operator ticket that cannot be stored is a hard failure.
		if ticket.Status == model.StatusNew {
			c.JSON(500, gin.H{"error": "failed to create ticket"})
			return
		}
	}

	h.fanOut(ticket, outcome)

	c.JSON(200, responseFromOutcome(ticket, outcome))
}

// AIHelp returns an instant solution without creating a ticket.
func (h *IngestHandler) AIHelp(c *gin.Context) {
	var req model.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "text is required"})
		return
	}

	if h.answerCache != nil {
		if cached, ok := h.answerCache.Get(c.Request.Context(), req.Text); ok {
			h.logger.Debug("instant help served from cache")
			c.JSON(200, cached)
			return
		}
	}

	resp := h.ingestService.Help(c.Request.Context(), req)

	if h.answerCache != nil {
		h.answerCache.Set(c.Request.Context(), req.Text, resp)
	}

	c.JSON(200, resp)
}

// fanOut pushes the finished outcome to operators, the event stream and
// the notification channels. All best effort.
func (h *IngestHandler) fanOut(ticket *model.Ticket, outcome model.Outcome) {
	feedType := model.FeedTicketCreated
	if ticket.Status == model.StatusClosedAuto {
		feedType = model.FeedAutoResolved
	}

	h.sessions.Broadcast(model.FeedMessage{
		MessageID:  uuid.New().String(),
		Type:       feedType,
		TicketID:   ticket.ID,
		Category:   ticket.Category,
		Priority:   ticket.Priority,
		Department: ticket.Department,
		Summary:    ticket.Summary,
		Timestamp:  time.Now(),
	})

	if h.producer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := h.producer.PublishOutcome(ctx, ticket.ID, outcome); err != nil {
				h.logger.Warn("ticket event publish failed",
					zap.String("ticketId", ticket.ID),
					zap.Error(err))
			}
		}()
	}

	// Only operator-facing tickets are announced on notification channels.
	if ticket.Status == model.StatusNew {
		t := *ticket
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			h.notifiers.NotifyAll(ctx, &t)
		}()
	}
}

// ticketFromOutcome builds the persistence record for either branch.
// Auto-resolved requests are archived with the answer as the stored reply.
func ticketFromOutcome(req model.IngestRequest, outcome model.Outcome) *model.Ticket {
	ticket := &model.Ticket{
		ID:      uuid.New().String(),
		Subject: req.Subject,
		Body:    req.Text,
		Status:  outcome.OutcomeStatus(),
	}

	switch o := outcome.(type) {
	case model.AutoResolved:
		ticket.Language = o.Language
		ticket.Category = o.Category
		ticket.Priority = o.Priority
		ticket.Department = o.Department
		ticket.Summary = o.Summary
		ticket.SuggestedReply = o.Answer
	case model.TicketDraft:
		ticket.Language = o.Language
		ticket.Category = o.Category
		ticket.Priority = o.Priority
		ticket.Department = o.Department
		ticket.Summary = o.Summary
		ticket.SuggestedReply = o.SuggestedReply
	}

	return ticket
}

func responseFromOutcome(ticket *model.Ticket, outcome model.Outcome) model.IngestResponse {
	resp := model.IngestResponse{
		Status:   outcome.OutcomeStatus(),
		TicketID: ticket.ID,
	}

	switch o := outcome.(type) {
	case model.AutoResolved:
		resp.Answer = o.Answer
		resp.Category = o.Category
		resp.Priority = o.Priority
		resp.Department = o.Department
		resp.Summary = o.Summary
		resp.Language = o.Language
	case model.TicketDraft:
		resp.Category = o.Category
		resp.Priority = o.Priority
		resp.Department = o.Department
		resp.Summary = o.Summary
		resp.SuggestedReply = o.SuggestedReply
		resp.Language = o.Language
	}

	return resp
}

// truncateRunes cuts the text to at most n runes.
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
