package reconcile

import "time"

// SyncResult describes one reconciliation run. It is built fresh for every run
// and returned to the caller; it is never persisted.
type SyncResult struct {
	// RunID correlates the result with the run's log lines.
	RunID string `json:"run_id"`

	// Success is true when no error was recorded during the run.
	Success bool `json:"success"`

	// Added counts records inserted without error.
	Added int `json:"added"`

	// Updated counts records updated without error.
	Updated int `json:"updated"`

	// Deleted counts records soft-deleted without error.
	Deleted int `json:"deleted"`

	// Errors holds one message per failed operation, in apply order.
	Errors []string `json:"errors"`

	// Timestamp is when the run started.
	Timestamp time.Time `json:"timestamp"`

	// DurationMS is the wall time of the run in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDelete soft-deletes a persisted record missing from the snapshot.
	ActionDelete ActionType = "delete"
	// ActionUpdate overwrites a persisted record present in the snapshot.
	ActionUpdate ActionType = "update"
	// ActionAdd inserts a snapshot record unknown to the store.
	ActionAdd ActionType = "add"
	// ActionBaseline is the active-key read before diffing. It is never planned
	// and only appears in a StoreError.
	ActionBaseline ActionType = "baseline"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`
}

// Plan is the three-way diff between a snapshot and the baseline.
// ToAdd, ToUpdate and ToDelete are pairwise disjoint by key.
type Plan[T any] struct {
	// ToAdd holds snapshot records whose key is not in the baseline, in snapshot order.
	ToAdd []T `json:"-"`

	// ToUpdate holds snapshot records whose key is in the baseline, in snapshot order.
	ToUpdate []T `json:"-"`

	// ToDelete holds baseline keys absent from the snapshot, sorted.
	ToDelete []string `json:"-"`

	// Actions lists every planned mutation in apply order (delete, update, add).
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// SnapshotSize is the number of distinct keys in the snapshot.
	SnapshotSize int `json:"snapshot_size"`

	// BaselineSize is the number of active keys in the store.
	BaselineSize int `json:"baseline_size"`

	// Duplicates counts snapshot records dropped because a later record had the same key.
	Duplicates int `json:"duplicates"`

	// ToAdd, ToUpdate and ToDelete count the planned actions per type.
	ToAdd    int `json:"to_add"`
	ToUpdate int `json:"to_update"`
	ToDelete int `json:"to_delete"`
}
