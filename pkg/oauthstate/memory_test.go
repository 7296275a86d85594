package oauthstate_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
	"github.com/dmitrymomot/docusign-oauth/pkg/oauthstate"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("store and consume once", func(t *testing.T) {
		t.Parallel()

		store := oauthstate.NewMemoryStore(time.Minute)
		require.NoError(t, store.Store(ctx, "s1", time.Now().Add(time.Minute)))
		assert.Equal(t, 1, store.Len())

		require.NoError(t, store.Consume(ctx, "s1"))
		assert.ErrorIs(t, store.Consume(ctx, "s1"), oauthstate.ErrStateNotFound)
		assert.ErrorIs(t, store.Consume(ctx, "s1"), docusign.ErrStateNotFound)
	})

	t.Run("unknown state", func(t *testing.T) {
		t.Parallel()

		store := oauthstate.NewMemoryStore(0)
		assert.ErrorIs(t, store.Consume(ctx, "forged"), oauthstate.ErrStateNotFound)
	})

	t.Run("empty state", func(t *testing.T) {
		t.Parallel()

		store := oauthstate.NewMemoryStore(0)
		assert.ErrorIs(t, store.Store(ctx, "", time.Now().Add(time.Minute)), oauthstate.ErrEmptyState)
		assert.ErrorIs(t, store.Consume(ctx, ""), oauthstate.ErrStateNotFound)
	})

	t.Run("duplicate state", func(t *testing.T) {
		t.Parallel()

		store := oauthstate.NewMemoryStore(0)
		require.NoError(t, store.Store(ctx, "s1", time.Now().Add(time.Minute)))
		assert.ErrorIs(t, store.Store(ctx, "s1", time.Now().Add(time.Minute)), oauthstate.ErrStateExists)
	})

	t.Run("expired state", func(t *testing.T) {
		t.Parallel()

		store := oauthstate.NewMemoryStore(0)
		require.NoError(t, store.Store(ctx, "past", time.Now().Add(-time.Second)))
		assert.Equal(t, 0, store.Len())
		assert.ErrorIs(t, store.Consume(ctx, "past"), oauthstate.ErrStateNotFound)

		require.NoError(t, store.Store(ctx, "short", time.Now().Add(20*time.Millisecond)))
		time.Sleep(50 * time.Millisecond)
		assert.ErrorIs(t, store.Consume(ctx, "short"), oauthstate.ErrStateNotFound)
	})

	t.Run("concurrent consume", func(t *testing.T) {
		t.Parallel()

		store := oauthstate.NewMemoryStore(0)
		require.NoError(t, store.Store(ctx, "race", time.Now().Add(time.Minute)))

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if store.Consume(ctx, "race") == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})
}

func TestMemoryStore_WithStrategy(t *testing.T) {
	t.Parallel()

	store := oauthstate.NewMemoryStore(time.Minute)
	s, err := docusign.New(docusign.Config{ClientID: "ABC123", ClientSecret: "secret"}, docusign.WithStateStore(store))
	require.NoError(t, err)

	res := s.Authenticate(context.Background(), newRequest("/auth/docusign"), docusign.AuthOptions{})
	require.Equal(t, docusign.ActionRedirect, res.Action)
	assert.Equal(t, 1, store.Len())

	forged := s.Authenticate(context.Background(), newRequest("/auth/docusign/callback?code=abc&state=forged"), docusign.AuthOptions{})
	assert.Equal(t, docusign.ActionFail, forged.Action)
	assert.Equal(t, docusign.MsgInvalidState, forged.Info.Message)
}
