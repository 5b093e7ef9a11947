package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/service"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: check an Origin allowlist in production
		return true
	},
}

// WebSocketHandler operator live-feed connection handler
type WebSocketHandler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

// NewWebSocketHandler creates the WebSocket handler.
func NewWebSocketHandler(sessionService *service.SessionService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// HandleWebSocket upgrades the connection and keeps the operator
// subscribed to the ticket feed until disconnect.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	operatorIDStr := c.Query("operatorId")
	operatorID, err := strconv.ParseInt(operatorIDStr, 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid operatorId"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	h.sessionService.RegisterOperator(operatorID, conn, sessionID, c.ClientIP())
	defer h.sessionService.RemoveOperatorBySessionID(sessionID)

	h.logger.Info("operator feed connected",
		zap.Int64("operatorId", operatorID),
		zap.String("sessionId", sessionID))

	for {
		var msg model.FeedMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error", zap.Error(err))
			}
			break
		}

		h.handleMessage(operatorID, &msg)
	}

	h.logger.Info("operator feed disconnected", zap.Int64("operatorId", operatorID))
}

// handleMessage processes an inbound operator message.
func (h *WebSocketHandler) handleMessage(operatorID int64, msg *model.FeedMessage) {
	switch msg.Type {
	case model.FeedHeartbeat:
		h.sessionService.UpdateHeartbeat(operatorID)
		h.logger.Debug("heartbeat received", zap.Int64("operatorId", operatorID))

	default:
		h.logger.Warn("unknown feed message type",
			zap.Int64("operatorId", operatorID),
			zap.String("type", msg.Type))
	}
}
