package checkout

import "sync"

// Manager hands out one checkout Session per cart session ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Get(sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		session = NewSession()
		m.sessions[sessionID] = session
	}
	return session
}

// Reset discards a session's checkout state, e.g. after the confirmation
// page has been shown or on logout.
func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}
