package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) RecordID() string { return n.ID }

// failingStore accepts reads but rejects every write
type failingStore struct {
	*store.MemoryStore
	failSet bool
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newTestCollection(st store.Store) *Collection[note] {
	return NewCollection[note](st, "test_notes",
		WithIDProvider[note](&shared.SequenceProvider{Prefix: "n"}))
}

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	first := newTestCollection(st)
	created := first.Create(ctx, func(id string) note {
		return note{ID: id, Text: "book venue"}
	})
	assert.Equal(t, "n-1", created.ID)

	// A fresh repository over the same store sees the persisted state
	second := newTestCollection(st)
	records := second.All(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, created, records[0])
}

func TestCollectionLoadAbsentKeyYieldsSeed(t *testing.T) {
	ctx := context.Background()
	seeded := NewCollection[note](store.NewMemoryStore(), "test_notes",
		WithSeed[note](func() []note {
			return []note{{ID: "seed-1", Text: "default"}}
		}))

	records := seeded.All(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "seed-1", records[0].ID)

	unseeded := newTestCollection(store.NewMemoryStore())
	assert.Empty(t, unseeded.All(ctx))
}

func TestCollectionLoadMalformedJSONYieldsSeed(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, "test_notes", "{not json"))

	c := NewCollection[note](st, "test_notes",
		WithSeed[note](func() []note {
			return []note{{ID: "seed-1"}}
		}))

	records := c.All(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "seed-1", records[0].ID)
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	c := newTestCollection(store.NewMemoryStore())
	created := c.Create(ctx, func(id string) note { return note{ID: id, Text: "old"} })

	updated, ok := c.Update(ctx, created.ID, func(n note) note {
		n.Text = "new"
		return n
	})
	require.True(t, ok)
	assert.Equal(t, "new", updated.Text)

	_, ok = c.Update(ctx, "id-that-does-not-exist", func(n note) note { return n })
	assert.False(t, ok)
	assert.Len(t, c.All(ctx), 1)
}

func TestCollectionDeleteUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := newTestCollection(store.NewMemoryStore())
	c.Create(ctx, func(id string) note { return note{ID: id} })

	assert.False(t, c.Delete(ctx, "id-that-does-not-exist"))
	assert.Len(t, c.All(ctx), 1)

	records := c.All(ctx)
	assert.True(t, c.Delete(ctx, records[0].ID))
	assert.Empty(t, c.All(ctx))
}

func TestCollectionUpsert(t *testing.T) {
	ctx := context.Background()
	c := newTestCollection(store.NewMemoryStore())

	c.Upsert(ctx, note{ID: "vendor-v1", Text: "first"})
	c.Upsert(ctx, note{ID: "vendor-v1", Text: "second"})

	records := c.All(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0].Text)
}

func TestCollectionInsertRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	c := newTestCollection(store.NewMemoryStore())

	require.NoError(t, c.Insert(ctx, note{ID: "a"}))
	err := c.Insert(ctx, note{ID: "a"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.Len(t, c.All(ctx), 1)
}

func TestCollectionWriteFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	st := &failingStore{MemoryStore: store.NewMemoryStore(), failSet: true}
	c := newTestCollection(st)

	created := c.Create(ctx, func(id string) note { return note{ID: id, Text: "kept"} })

	// In-memory state is authoritative for the session
	got, ok := c.Get(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, "kept", got.Text)

	// Nothing reached the backing store
	_, err := st.MemoryStore.Get(ctx, "test_notes")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestCollectionSaveIsFullOverwrite(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	c := newTestCollection(st)

	c.Create(ctx, func(id string) note { return note{ID: id, Text: "one"} })
	c.Create(ctx, func(id string) note { return note{ID: id, Text: "two"} })
	c.Delete(ctx, "n-1")

	raw, err := st.Get(ctx, "test_notes")
	require.NoError(t, err)

	var stored []note
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "two", stored[0].Text)
}
