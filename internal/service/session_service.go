package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

var (
	ErrOperatorOffline = fmt.Errorf("operator is offline")
)

// SessionService operator WebSocket session management for the live
// ticket feed
type SessionService struct {
	operatorSessions map[int64]*model.OperatorSession // operatorId -> session
	sessionToOp      map[string]int64                 // sessionId -> operatorId
	mu               sync.RWMutex
	logger           *zap.Logger
}

// NewSessionService creates the session service and starts the heartbeat
// checker.
func NewSessionService(logger *zap.Logger) *SessionService {
	s := &SessionService{
		operatorSessions: make(map[int64]*model.OperatorSession),
		sessionToOp:      make(map[string]int64),
		logger:           logger,
	}

	go s.heartbeatChecker()

	return s
}

// RegisterOperator registers an operator session, closing any previous
// connection for the same operator.
func (s *SessionService) RegisterOperator(operatorID int64, conn *websocket.Conn, sessionID string, clientIP string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.operatorSessions[operatorID]; ok {
		s.logger.Info("operator reconnected, closing previous connection",
			zap.Int64("operatorId", operatorID),
			zap.String("oldSessionId", existing.SessionID))
		existing.Conn.Close()
		delete(s.sessionToOp, existing.SessionID)
	}

	session := &model.OperatorSession{
		OperatorID:    operatorID,
		Conn:          conn,
		SessionID:     sessionID,
		ClientIP:      clientIP,
		LastHeartbeat: time.Now(),
		MissedBeats:   0,
	}

	s.operatorSessions[operatorID] = session
	s.sessionToOp[sessionID] = operatorID

	s.logger.Info("operator session registered",
		zap.Int64("operatorId", operatorID),
		zap.String("sessionId", sessionID))
}

// SendToOperator sends a message to one operator.
func (s *SessionService) SendToOperator(operatorID int64, message interface{}) error {
	s.mu.RLock()
	session, ok := s.operatorSessions[operatorID]
	s.mu.RUnlock()

	if !ok {
		return ErrOperatorOffline
	}

	if err := session.WriteMessage(message); err != nil {
		s.logger.Error("feed message delivery failed",
			zap.Int64("operatorId", operatorID),
			zap.Error(err))
		// Clean up the broken connection asynchronously
		go s.RemoveOperatorByID(operatorID)
		return err
	}

	return nil
}

// Broadcast sends a feed message to every connected operator. Delivery is
// best effort; broken connections are cleaned up and never fail the caller.
func (s *SessionService) Broadcast(msg model.FeedMessage) {
	s.mu.RLock()
	ids := make([]int64, 0, len(s.operatorSessions))
	for id := range s.operatorSessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		_ = s.SendToOperator(id, msg)
	}

	s.logger.Debug("feed message broadcast",
		zap.String("type", msg.Type),
		zap.Int("operators", len(ids)))
}

// UpdateHeartbeat refreshes an operator's heartbeat.
func (s *SessionService) UpdateHeartbeat(operatorID int64) bool {
	s.mu.RLock()
	session, ok := s.operatorSessions[operatorID]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	session.UpdateHeartbeat()
	s.logger.Debug("heartbeat updated", zap.Int64("operatorId", operatorID))
	return true
}

// RemoveOperatorBySessionID removes a session by its session ID.
func (s *SessionService) RemoveOperatorBySessionID(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if operatorID, ok := s.sessionToOp[sessionID]; ok {
		delete(s.operatorSessions, operatorID)
		delete(s.sessionToOp, sessionID)
		s.logger.Info("operator session removed",
			zap.Int64("operatorId", operatorID),
			zap.String("sessionId", sessionID))
	}
}

// RemoveOperatorByID removes a session by operator ID.
func (s *SessionService) RemoveOperatorByID(operatorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.operatorSessions[operatorID]; ok {
		delete(s.sessionToOp, session.SessionID)
		delete(s.operatorSessions, operatorID)
		s.logger.Info("operator session removed", zap.Int64("operatorId", operatorID))
	}
}

// GetOnlineCount returns the number of connected operators.
func (s *SessionService) GetOnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.operatorSessions)
}

// heartbeatChecker periodically drops sessions that stopped sending
// heartbeats.
func (s *SessionService) heartbeatChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()

		now := time.Now()
		for operatorID, session := range s.operatorSessions {
			if now.Sub(session.LastHeartbeat) > 60*time.Second {
				session.IncrementMissedBeats()

				if session.ShouldBeCleaned() {
					s.logger.Info("cleaning up stale operator session",
						zap.Int64("operatorId", operatorID),
						zap.Int("missedBeats", session.MissedBeats))

					session.Conn.Close()
					delete(s.operatorSessions, operatorID)
					delete(s.sessionToOp, session.SessionID)
				} else {
					s.logger.Warn("operator heartbeat missed",
						zap.Int64("operatorId", operatorID),
						zap.Int("missedBeats", session.MissedBeats))
				}
			}
		}

		s.mu.Unlock()
	}
}
