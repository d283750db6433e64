package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process session store with TTL eviction. Expired
// sessions are treated as absent on read and purged opportunistically.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a store whose sessions expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the user's session, or nil when absent, inactive, or expired.
func (m *MemoryStore) Get(_ context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	if !s.Active || m.expired(s) {
		delete(m.sessions, userID)
		return nil, nil
	}
	return s, nil
}

// Set replaces the user's session.
func (m *MemoryStore) Set(_ context.Context, userID string, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
	return nil
}

// Clear removes the user's session. Idempotent.
func (m *MemoryStore) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

// Exists reports whether the user has an active, unexpired session.
func (m *MemoryStore) Exists(ctx context.Context, userID string) (bool, error) {
	s, err := m.Get(ctx, userID)
	return s != nil, err
}

// PurgeExpired removes all expired sessions and returns how many it dropped.
func (m *MemoryStore) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for userID, s := range m.sessions {
		if !s.Active || m.expired(s) {
			delete(m.sessions, userID)
			purged++
		}
	}
	return purged
}

func (m *MemoryStore) expired(s *Session) bool {
	return m.ttl > 0 && m.now().Sub(s.CreatedAt) > m.ttl
}
