// Package conversation - Session store
// Session lifetime policy (eviction, timeout) belongs to the
// surrounding service; the core only defines the store operations.
package conversation

import (
	"context"
	"sync"
	"time"

	"warequote/internal/errors"
)

// SessionStore persists conversation sessions
type SessionStore interface {
	// Get returns the session with the given id
	Get(ctx context.Context, id string) (*Session, error)

	// Put stores or replaces a session
	Put(ctx context.Context, s *Session) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// ListExpired returns ids of sessions idle since before the cutoff
	ListExpired(ctx context.Context, cutoff time.Time) ([]string, error)
}

// MemoryStore is an in-process session store
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Get returns the session with the given id
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Newf(errors.TypeStore, "session not found: %s", id)
	}
	return s, nil
}

// Put stores or replaces a session
func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID.String()] = s
	return nil
}

// Delete removes a session
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// ListExpired returns ids of sessions idle since before the cutoff
func (m *MemoryStore) ListExpired(ctx context.Context, cutoff time.Time) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
