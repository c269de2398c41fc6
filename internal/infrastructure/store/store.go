// Package store provides the key-value persistence port used by every
// planner module. Each module owns one fixed key holding one
// JSON-serialized collection; the backing store is injected so it can
// be swapped between in-memory, embedded and remote implementations.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the key
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the synchronous key-value string store. Set failures
// (quota, closed backend) are expected to be treated as non-fatal by
// callers: in-memory state stays authoritative for the session.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
