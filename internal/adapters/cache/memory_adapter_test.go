package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

func TestMemoryAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on absent key", func(t *testing.T) {
		a := NewMemoryAdapter()
		_, err := a.Get(ctx, "missing")
		assert.ErrorIs(t, err, providers.ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		a := NewMemoryAdapter()
		require.NoError(t, a.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := a.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		now := time.Date(2025, 5, 22, 10, 0, 0, 0, time.UTC)
		a := NewMemoryAdapter()
		a.now = func() time.Time { return now }

		require.NoError(t, a.Set(ctx, "k", []byte("v"), time.Minute))
		now = now.Add(2 * time.Minute)

		_, err := a.Get(ctx, "k")
		assert.ErrorIs(t, err, providers.ErrCacheMiss)
	})

	t.Run("delete", func(t *testing.T) {
		a := NewMemoryAdapter()
		require.NoError(t, a.Set(ctx, "k", []byte("v"), 0))
		require.NoError(t, a.Delete(ctx, "k"))

		_, err := a.Get(ctx, "k")
		assert.ErrorIs(t, err, providers.ErrCacheMiss)
	})
}
