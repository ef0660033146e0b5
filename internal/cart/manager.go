package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out per-session cart stores. Carts live in memory only;
// a session that never checks out simply ages away with the process.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Store
	stock Availability
}

// NewManager builds a session cart registry backed by the given
// availability source.
func NewManager(stock Availability) *Manager {
	return &Manager{
		carts: make(map[string]*Store),
		stock: stock,
	}
}

// Get returns the store for sessionID, creating it on first use. An empty
// session id is replaced with a fresh one; the (possibly new) id is returned
// so callers can echo it back to the client.
func (m *Manager) Get(sessionID string) (*Store, string) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.carts[sessionID]
	if !ok {
		store = NewStore(m.stock)
		m.carts[sessionID] = store
	}
	return store, sessionID
}

// Drop removes a session's cart, if present.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
