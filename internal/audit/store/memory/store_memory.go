package memory

import (
	"context"
	"sync"

	"cardcheck/internal/audit"
)

// InMemoryStore keeps audit events in process memory, keyed by card
// fingerprint. MVP implementation; production deployments use the Postgres
// store.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CardFingerprint] = append(s.events[event.CardFingerprint], event)
	return nil
}

func (s *InMemoryStore) ListByFingerprint(_ context.Context, fingerprint string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[fingerprint]...), nil
}

// Clear removes all stored events. Test helper.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]audit.Event)
}
