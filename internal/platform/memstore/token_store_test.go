package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChenReuven/next-api/internal/store"
)

func TestTokenStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expiry := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Put then Get round-trips the entry", func(t *testing.T) {
		t.Parallel()
		s := NewTokenStore()

		entry := store.TokenEntry{AccountID: 1, ExpiresAt: expiry}
		require.NoError(t, s.Put(ctx, "tok", entry))

		got, err := s.Get(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, entry, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("Put replaces an existing entry", func(t *testing.T) {
		t.Parallel()
		s := NewTokenStore()

		require.NoError(t, s.Put(ctx, "tok", store.TokenEntry{AccountID: 1, ExpiresAt: expiry}))
		later := store.TokenEntry{AccountID: 2, ExpiresAt: expiry.Add(time.Hour)}
		require.NoError(t, s.Put(ctx, "tok", later))

		got, err := s.Get(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, later, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("Get misses unknown token", func(t *testing.T) {
		t.Parallel()
		s := NewTokenStore()

		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})

	t.Run("Delete removes the entry once", func(t *testing.T) {
		t.Parallel()
		s := NewTokenStore()

		require.NoError(t, s.Put(ctx, "tok", store.TokenEntry{AccountID: 1, ExpiresAt: expiry}))
		require.NoError(t, s.Delete(ctx, "tok"))
		assert.Equal(t, 0, s.Len())

		assert.ErrorIs(t, s.Delete(ctx, "tok"), store.ErrTokenNotFound)
	})

	t.Run("expired entries stay until deleted", func(t *testing.T) {
		t.Parallel()
		s := NewTokenStore()

		past := store.TokenEntry{AccountID: 1, ExpiresAt: expiry.Add(-time.Hour)}
		require.NoError(t, s.Put(ctx, "stale", past))

		// The store itself does not interpret ExpiresAt.
		got, err := s.Get(ctx, "stale")
		require.NoError(t, err)
		assert.Equal(t, past, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		t.Parallel()
		s := NewTokenStore()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				token := string(rune('a' + n))
				_ = s.Put(ctx, token, store.TokenEntry{AccountID: int64(n), ExpiresAt: expiry})
				_, _ = s.Get(ctx, token)
				_ = s.Delete(ctx, token)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 0, s.Len())
	})
}
