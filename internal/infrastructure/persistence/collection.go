// Package persistence implements the repository pattern shared by every
// planner module: one JSON-serialized collection per fixed store key,
// loaded tolerantly at startup and re-persisted in full after every
// mutation.
package persistence

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"go.uber.org/zap"
)

// Collection owns one record collection under one fixed key. All reads
// and writes for that key go through the same instance, which
// serializes the read-modify-write cycle with a mutex so concurrent
// mutations (e.g. two sync calls in quick succession) cannot lose
// updates.
//
// Persistence is fire-and-forget: a failed write is logged and the
// in-memory state stays authoritative for the rest of the session.
type Collection[T shared.Record] struct {
	key   string
	store store.Store
	ids   shared.IDProvider
	log   *zap.Logger
	seed  func() []T

	mu      sync.Mutex
	records []T
	loaded  bool
}

// Option configures a Collection
type Option[T shared.Record] func(*Collection[T])

// WithSeed sets the default collection used when the key is absent or
// its stored value cannot be parsed
func WithSeed[T shared.Record](seed func() []T) Option[T] {
	return func(c *Collection[T]) {
		c.seed = seed
	}
}

// WithIDProvider overrides the identifier generator
func WithIDProvider[T shared.Record](ids shared.IDProvider) Option[T] {
	return func(c *Collection[T]) {
		c.ids = ids
	}
}

// WithLogger sets the logger used for persistence failures
func WithLogger[T shared.Record](log *zap.Logger) Option[T] {
	return func(c *Collection[T]) {
		c.log = log
	}
}

// NewCollection creates a repository for the collection stored under key
func NewCollection[T shared.Record](st store.Store, key string, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		key:   key,
		store: st,
		ids:   shared.UUIDProvider{},
		log:   zap.NewNop(),
		seed:  func() []T { return nil },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the fixed storage key the collection persists under
func (c *Collection[T]) Key() string {
	return c.key
}

// load reads and parses the stored collection. Absent keys and
// malformed JSON both degrade to the seed collection; neither is an
// error to the caller. Must be called with c.mu held.
func (c *Collection[T]) load(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true
	c.records = c.seed()

	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if err != store.ErrKeyNotFound {
			c.log.Warn("failed to read stored collection, using defaults",
				zap.String("key", c.key), zap.Error(err))
		}
		return
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		c.log.Warn("stored collection is malformed, using defaults",
			zap.String("key", c.key), zap.Error(err))
		return
	}
	c.records = records
}

// save serializes the full collection and overwrites the stored value.
// Failures are logged, never returned. Must be called with c.mu held.
func (c *Collection[T]) save(ctx context.Context) {
	raw, err := json.Marshal(c.records)
	if err != nil {
		c.log.Warn("failed to serialize collection",
			zap.String("key", c.key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		c.log.Warn("failed to persist collection, in-memory state retained",
			zap.String("key", c.key), zap.Error(err))
	}
}

// All returns a copy of the collection in insertion order
func (c *Collection[T]) All(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record with the given identifier
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	for _, r := range c.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns a fresh identifier, appends the record built from it
// and persists the collection
func (c *Collection[T]) Create(ctx context.Context, build func(id string) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	record := build(c.ids.NewID())
	c.records = append(c.records, record)
	c.save(ctx)
	return record
}

// Insert appends a record whose identifier the caller controls. It
// fails with ErrAlreadyExists when the identifier is already taken.
func (c *Collection[T]) Insert(ctx context.Context, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	for _, r := range c.records {
		if r.RecordID() == record.RecordID() {
			return shared.ErrAlreadyExists
		}
	}
	c.records = append(c.records, record)
	c.save(ctx)
	return nil
}

// Update replaces the matching record with apply's result. When no
// record matches the collection is unchanged and ok is false.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records[i] = apply(r)
			c.save(ctx)
			return c.records[i], true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the record with a matching identifier in place, or
// appends the record when none matches
func (c *Collection[T]) Upsert(ctx context.Context, record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	for i, r := range c.records {
		if r.RecordID() == record.RecordID() {
			c.records[i] = record
			c.save(ctx)
			return
		}
	}
	c.records = append(c.records, record)
	c.save(ctx)
}

// Delete removes the matching record; deleting an unknown identifier is
// a no-op and reports false
func (c *Collection[T]) Delete(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(ctx)
	for i, r := range c.records {
		if r.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			c.save(ctx)
			return true
		}
	}
	return false
}

// ReplaceAll swaps in a completely new collection and persists it
func (c *Collection[T]) ReplaceAll(ctx context.Context, records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
	c.records = make([]T, len(records))
	copy(c.records, records)
	c.save(ctx)
}
