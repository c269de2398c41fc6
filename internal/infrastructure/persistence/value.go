package persistence

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bridallink/backend/internal/infrastructure/store"
	"go.uber.org/zap"
)

// Value owns a single JSON-serialized record under one fixed key, for
// module state that is not a collection (budget totals, active session,
// premium flag, wedding date). Same tolerance rules as Collection:
// absent or malformed values degrade to the default, write failures are
// logged and the in-memory value stays authoritative.
type Value[T any] struct {
	key     string
	store   store.Store
	log     *zap.Logger
	def     func() T
	mu      sync.Mutex
	current T
	loaded  bool
}

// NewValue creates a repository for the single value stored under key
func NewValue[T any](st store.Store, key string, def func() T, log *zap.Logger) *Value[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Value[T]{key: key, store: st, def: def, log: log}
}

// Key returns the fixed storage key the value persists under
func (v *Value[T]) Key() string {
	return v.key
}

// Get returns the stored value, falling back to the default
func (v *Value[T]) Get(ctx context.Context) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.load(ctx)
	return v.current
}

// Set replaces and persists the value
func (v *Value[T]) Set(ctx context.Context, value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded = true
	v.current = value
	raw, err := json.Marshal(value)
	if err != nil {
		v.log.Warn("failed to serialize value", zap.String("key", v.key), zap.Error(err))
		return
	}
	if err := v.store.Set(ctx, v.key, string(raw)); err != nil {
		v.log.Warn("failed to persist value, in-memory state retained",
			zap.String("key", v.key), zap.Error(err))
	}
}

// Clear resets to the default and removes the stored value
func (v *Value[T]) Clear(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded = true
	v.current = v.def()
	if err := v.store.Delete(ctx, v.key); err != nil {
		v.log.Warn("failed to delete stored value", zap.String("key", v.key), zap.Error(err))
	}
}

func (v *Value[T]) load(ctx context.Context) {
	if v.loaded {
		return
	}
	v.loaded = true
	v.current = v.def()

	raw, err := v.store.Get(ctx, v.key)
	if err != nil {
		if err != store.ErrKeyNotFound {
			v.log.Warn("failed to read stored value, using default",
				zap.String("key", v.key), zap.Error(err))
		}
		return
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		v.log.Warn("stored value is malformed, using default",
			zap.String("key", v.key), zap.Error(err))
		return
	}
	v.current = value
}
