package cart

import (
	"context"
	"sync"

	"github.com/Greenoni119/k2.0/store"
)

// Manager hands out one Cart per client, hydrating from the store on first
// access so a cart survives reloads and new tabs.
type Manager struct {
	mu    sync.RWMutex
	store store.Store
	carts map[string]*Cart
}

func NewManager(st store.Store) *Manager {
	return &Manager{store: st, carts: make(map[string]*Cart)}
}

// Get returns the client's cart, loading it from the store if this is the
// first touch of the session.
func (m *Manager) Get(ctx context.Context, clientID string) *Cart {
	m.mu.RLock()
	c, ok := m.carts[clientID]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[clientID]; ok {
		return c
	}
	c = Load(ctx, m.store, clientID)
	m.carts[clientID] = c
	return c
}
