package shared

import (
	"strconv"

	"github.com/google/uuid"
)

// Record is the base interface for all persisted planner records.
// Every record is identified by an opaque string; identifier uniqueness
// within a collection is the only structural invariant.
type Record interface {
	RecordID() string
}

// IDProvider generates identifiers for new records. It is injected into
// repositories so tests can supply deterministic sequences and so the
// generation strategy can change without touching module logic.
type IDProvider interface {
	NewID() string
}

// UUIDProvider generates random UUID identifiers. Unlike timestamp-based
// identifiers, UUIDs stay unique under burst creation.
type UUIDProvider struct{}

// NewID returns a new random UUID string
func (UUIDProvider) NewID() string {
	return uuid.NewString()
}

// SequenceProvider generates identifiers from a prefix and a counter.
// Intended for tests that need predictable identifiers.
type SequenceProvider struct {
	Prefix string
	next   int
}

// NewID returns the next identifier in the sequence
func (p *SequenceProvider) NewID() string {
	p.next++
	return p.Prefix + "-" + strconv.Itoa(p.next)
}
