// Package store provides the in-memory kudos store used for single-instance
// development mode and as the backing store in unit tests. The production
// adapter lives in internal/database.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

// MemoryStore keeps kudos events in an append-only slice. Events are copied on
// the way in and out so callers cannot mutate stored state.
type MemoryStore struct {
	mu     sync.Mutex
	events []domain.KudosEvent
}

var _ domain.KudosStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event domain.KudosEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.RecipientIDs = append([]string(nil), event.RecipientIDs...)
	s.events = append(s.events, event)
	return nil
}

// RecentSince returns events with CreatedAt >= cutoff in insertion order.
// Callers must not rely on the ordering; the Postgres adapter returns
// recency-descending.
func (s *MemoryStore) RecentSince(_ context.Context, cutoff time.Time) ([]domain.KudosEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.KudosEvent
	for _, event := range s.events {
		if !event.CreatedAt.Before(cutoff) {
			event.RecipientIDs = append([]string(nil), event.RecipientIDs...)
			result = append(result, event)
		}
	}
	return result, nil
}

// Len reports the number of stored events. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
