package model

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// OperatorSession a connected operator watching the live ticket feed
type OperatorSession struct {
	OperatorID    int64
	Conn          *websocket.Conn
	SessionID     string
	ClientIP      string
	LastHeartbeat time.Time
	MissedBeats   int
	mu            sync.RWMutex // guards session fields
}

// UpdateHeartbeat records a fresh heartbeat.
func (s *OperatorSession) UpdateHeartbeat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastHeartbeat = time.Now()
	s.MissedBeats = 0
}

// IncrementMissedBeats bumps the missed-heartbeat counter.
func (s *OperatorSession) IncrementMissedBeats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MissedBeats++
}

// ShouldBeCleaned reports whether the session missed too many heartbeats.
func (s *OperatorSession) ShouldBeCleaned() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MissedBeats >= 3
}

// WriteMessage writes a message to the WebSocket (thread safe).
func (s *OperatorSession) WriteMessage(message interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteJSON(message)
}
