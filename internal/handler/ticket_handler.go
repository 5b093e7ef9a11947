package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/store"
	"go.uber.org/zap"
)

// validStatuses statuses an operator may set
var validStatuses = map[string]bool{
	model.StatusNew:        true,
	model.StatusInProgress: true,
	model.StatusResolved:   true,
	model.StatusClosedAuto: true,
}

// TicketHandler ticket querying and status management
type TicketHandler struct {
	ticketStore *store.TicketStore
	logger      *zap.Logger
}

// NewTicketHandler creates the ticket handler.
func NewTicketHandler(ticketStore *store.TicketStore, logger *zap.Logger) *TicketHandler {
	return &TicketHandler{
		ticketStore: ticketStore,
		logger:      logger,
	}
}

// List returns tickets, optionally filtered by status and category.
func (h *TicketHandler) List(c *gin.Context) {
	status := c.Query("status")
	category := c.Query("category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	tickets, err := h.ticketStore.List(c.Request.Context(), status, category, limit)
	if err != nil {
		h.logger.Error("ticket listing failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "failed to list tickets"})
		return
	}

	c.JSON(200, gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// Get returns one ticket by ID.
func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.ticketStore.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrTicketNotFound) {
			c.JSON(404, gin.H{"error": "ticket not found"})
			return
		}
		h.logger.Error("ticket lookup failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "failed to load ticket"})
		return
	}

	c.JSON(200, ticket)
}

// UpdateStatus changes a ticket's status.
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "status is required"})
		return
	}

	if !validStatuses[req.Status] {
		c.JSON(400, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	id := c.Param("id")
	if err := h.ticketStore.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, store.ErrTicketNotFound) {
			c.JSON(404, gin.H{"error": "ticket not found"})
			return
		}
		h.logger.Error("ticket status update failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "failed to update ticket"})
		return
	}

	c.JSON(200, gin.H{"success": true, "id": id, "status": req.Status})
}

// Metrics returns helpdesk counters.
func (h *TicketHandler) Metrics(c *gin.Context) {
	metrics, err := h.ticketStore.Metrics(c.Request.Context())
	if err != nil {
		h.logger.Error("metrics aggregation failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "failed to aggregate metrics"})
		return
	}

	c.JSON(200, metrics)
}
