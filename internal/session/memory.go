package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is the default Provider backing: an in-process map with per-entry
// expiry. Expired entries are dropped lazily on Resolve and in bulk by Sweep.
type Memory struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	identity  Identity
	expiresAt time.Time
}

var _ Provider = (*Memory)(nil)

// NewMemory creates an in-memory session store with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (m *Memory) Create(_ context.Context, userID int, username string) (string, error) {
	token := uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = memorySession{
		identity:  Identity{UserID: userID, Username: username},
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	return token, nil
}

func (m *Memory) Resolve(_ context.Context, token string) (*Identity, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(s.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, nil
	}

	identity := s.identity
	return &identity, nil
}

func (m *Memory) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Sweep removes all expired sessions. Run it periodically; without it the map
// only sheds expired entries that happen to be resolved again.
func (m *Memory) Sweep() {
	now := time.Now()

	m.mu.Lock()
	for token, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, token)
		}
	}
	m.mu.Unlock()
}
