package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKeyValueStore()

	_, err := s.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, TokenKey, "first"))
	require.NoError(t, s.Set(ctx, TokenKey, "second"))

	value, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "second", value)

	require.NoError(t, s.Remove(ctx, TokenKey))
	require.NoError(t, s.Remove(ctx, TokenKey))

	_, err = s.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryKeyValueStore()
	assert.ErrorIs(t, s.Set(ctx, RoleKey, "admin"), context.Canceled)
	_, err := s.Get(ctx, RoleKey)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Remove(ctx, RoleKey), context.Canceled)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKeyValueStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = s.Set(ctx, key, "v")
			_, _ = s.Get(ctx, key)
			_ = s.Remove(ctx, key)
		}()
	}
	wg.Wait()
}
