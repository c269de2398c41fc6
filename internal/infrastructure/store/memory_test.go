package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "bridallink_guests", `[{"id":"g1"}]`))

	v, err := s.Get(ctx, "bridallink_guests")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"g1"}]`, v)

	// Overwrite replaces the full value
	require.NoError(t, s.Set(ctx, "bridallink_guests", `[]`))
	v, err = s.Get(ctx, "bridallink_guests")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is a no-op
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "shared", "value")
			_, _ = s.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	v, err := s.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "value", v)
}
