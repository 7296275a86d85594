package oauthstate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

// DefaultKeyPrefix namespaces state keys in Redis.
const DefaultKeyPrefix = "docusign:oauth_state:"

// RedisStore keeps issued states in Redis so any instance behind a load
// balancer can verify a callback.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisStore wraps client. An empty prefix falls back to DefaultKeyPrefix.
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Store sets the state key with the remaining lifetime as TTL. A state that
// is already expired is accepted and never stored.
func (s *RedisStore) Store(ctx context.Context, state string, expiresAt time.Time) error {
	if state == "" {
		return ErrEmptyState
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	ok, err := s.client.SetNX(ctx, s.key(state), 1, ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store oauth state: %w", err)
	}
	if !ok {
		return ErrStateExists
	}
	return nil
}

// Consume deletes the state key. DEL is atomic, so of two concurrent
// callbacks carrying the same state only one succeeds.
func (s *RedisStore) Consume(ctx context.Context, state string) error {
	if state == "" {
		return ErrStateNotFound
	}
	n, err := s.client.Del(ctx, s.key(state)).Result()
	if err != nil {
		return fmt.Errorf("failed to consume oauth state: %w", err)
	}
	if n == 0 {
		return ErrStateNotFound
	}
	return nil
}

func (s *RedisStore) key(state string) string {
	return s.prefix + state
}

var _ docusign.StateStore = (*RedisStore)(nil)
