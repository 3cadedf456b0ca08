package cart

import "sync"

// Manager hands out one Store per session ID. Stores are created lazily
// on first access.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore()
		m.stores[sessionID] = store
	}
	return store
}

// Drop discards a session's cart entirely, e.g. on logout.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
