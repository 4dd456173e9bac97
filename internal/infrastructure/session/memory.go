// Package session provides SessionStore implementations: an in-process map
// for single-node deployments and a Redis-backed store for shared caches.
package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore keeps the token → user-id mapping in process memory. Expired
// entries are dropped lazily on Resolve and swept opportunistically on Create.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, token string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for t, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, t)
		}
	}

	s.entries[token] = memoryEntry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return 0, false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return 0, false, nil
	}
	return entry.userID, true, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Len reports the number of live entries. Used by tests and the readiness
// probe only.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
