package session

import (
	"sync"

	"go.uber.org/zap"
)

// Manager owns the live session contexts. Lookups and lifecycle are
// safe for concurrent use; the contexts themselves belong to one
// connection at a time.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Context
	logger   *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Context),
		logger:   logger,
	}
}

// Get returns the context for a session, creating it on first use.
func (m *Manager) Get(sessionID string) *Context {
	m.mu.RLock()
	ctx, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return ctx
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx, ok = m.sessions[sessionID]; ok {
		return ctx
	}
	ctx = NewContext(sessionID)
	m.sessions[sessionID] = ctx
	m.logger.Debug("session context created", zap.String("session_id", sessionID))
	return ctx
}

// Drop discards a session's context when the connection ends.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	m.logger.Debug("session context dropped", zap.String("session_id", sessionID))
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
