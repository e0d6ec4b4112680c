package store

import (
	"context"
	"sync"

	"github.com/Greenoni119/k2.0/models"
)

// MemoryStore is an in-memory Store. It backs tests and serves as the
// fallback when no database is configured. Safe for concurrent use via
// internal RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

func (s *MemoryStore) Load(ctx context.Context, clientID string) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.records[clientID]
	if !ok {
		return []models.CartLine{}, nil
	}
	return decodeLines(payload), nil
}

func (s *MemoryStore) Save(ctx context.Context, clientID string, lines []models.CartLine) error {
	payload, err := encodeLines(lines)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[clientID] = payload
	return nil
}

func (s *MemoryStore) Erase(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, clientID)
	return nil
}
