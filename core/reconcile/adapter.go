package reconcile

import "context"

// Source yields the full external snapshot for one run.
type Source[T any] interface {
	// Fetch returns every valid record of the snapshot. Failures are reported as
	// *FetchError or *ParseError and abort the run.
	Fetch(ctx context.Context) ([]T, error)
}

// Store persists records keyed by identity.
type Store[T any] interface {
	// ExistingActiveCodes returns the keys of all active persisted records.
	// On connectivity failure it returns an empty set instead of an error.
	ExistingActiveCodes(ctx context.Context) map[string]struct{}

	// Insert creates a record. It never upserts.
	Insert(ctx context.Context, item T) error

	// Update overwrites the record with the same key. A missing key is a no-op.
	Update(ctx context.Context, item T) error

	// SoftDelete marks the record inactive without removing it.
	SoftDelete(ctx context.Context, key string) error
}

// BaselineLoader is implemented by stores that can report baseline read
// failures instead of degrading to an empty set.
type BaselineLoader interface {
	LoadActiveCodes(ctx context.Context) (map[string]struct{}, error)
}

// Spec wires a source and a store for one entity type.
type Spec[T any] struct {
	// Name identifies the synchronized entity in logs (e.g. "listings").
	Name string

	// Source provides the snapshot.
	Source Source[T]

	// Store holds the persisted state.
	Store Store[T]

	// Key extracts the identity key of a record.
	Key func(T) string

	// FailOnBaselineError aborts the run when the baseline cannot be read.
	// Requires Store to implement BaselineLoader; otherwise it has no effect.
	FailOnBaselineError bool
}
