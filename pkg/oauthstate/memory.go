package oauthstate

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

// MemoryStore keeps issued states in process memory. It suits single
// instance deployments; states do not survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

// NewMemoryStore creates a store that sweeps expired states every cleanup
// interval. A non-positive interval disables the sweeper; expired states are
// still rejected on Consume.
func NewMemoryStore(cleanup time.Duration) *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, cleanup)}
}

// Store records state until expiresAt. A state that is already expired is
// accepted and never stored.
func (s *MemoryStore) Store(_ context.Context, state string, expiresAt time.Time) error {
	if state == "" {
		return ErrEmptyState
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Add(state, struct{}{}, ttl); err != nil {
		return ErrStateExists
	}
	return nil
}

// Consume removes state, failing with ErrStateNotFound when it was never
// stored, has expired or was consumed before.
func (s *MemoryStore) Consume(_ context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.cache.Get(state); !found {
		return ErrStateNotFound
	}
	s.cache.Delete(state)
	return nil
}

// Len returns the number of states held, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}

var _ docusign.StateStore = (*MemoryStore)(nil)
