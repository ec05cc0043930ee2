package services

import (
	"sync"

	"go.uber.org/zap"
)

// Session is the controller of one claim: its conversation and tab workspace
type Session struct {
	Conversation *Conversation
	Tabs         *TabWorkspace
}

// SessionManager creates one session per claim on first use
type SessionManager struct {
	responder Responder
	metrics   *Metrics
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

// NewSessionManager creates an empty session manager
func NewSessionManager(responder Responder, metrics *Metrics, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		responder: responder,
		metrics:   metrics,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// Session returns the session of a claim, creating it if needed.
// Callers validate the claim ID first.
func (m *SessionManager) Session(claimID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[claimID]; ok {
		return s
	}

	s := &Session{
		Conversation: NewConversation(claimID, m.responder, m.metrics, m.logger),
		Tabs:         NewTabWorkspace(),
	}
	if m.closed {
		// sessions created after shutdown never dispatch
		s.Conversation.Close()
	}
	m.sessions[claimID] = s
	m.logger.Debug("Session created", zap.String("claim_id", claimID))
	return s
}

// Count returns the number of open sessions
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close closes every conversation, cancelling outstanding dispatches
func (m *SessionManager) Close() {
	m.mu.Lock()
	m.closed = true
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Conversation.Close()
	}
	m.logger.Info("Sessions closed", zap.Int("count", len(sessions)))
}
