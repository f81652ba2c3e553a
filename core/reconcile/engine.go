package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine reconciles a source snapshot against a store.
// It holds no state between runs; concurrent runs are not coordinated here
// (see Guard).
type Engine[T any] struct {
	spec   Spec[T]
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an engine for the given spec.
func NewEngine[T any](spec Spec[T], logger *zap.Logger) *Engine[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine[T]{
		spec:   spec,
		logger: logger.With(zap.String("sync", spec.Name)),
		now:    time.Now,
	}
}

// Plan fetches the snapshot, reads the baseline and computes the diff.
// It does NOT execute actions.
func (e *Engine[T]) Plan(ctx context.Context) (*Plan[T], error) {
	snapshot, err := e.spec.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	baseline, err := e.baseline(ctx)
	if err != nil {
		return nil, err
	}

	plan := Diff(snapshot, baseline, e.spec.Key)
	e.logger.Info("Reconciliation planned",
		zap.Int("snapshot", plan.Summary.SnapshotSize),
		zap.Int("baseline", plan.Summary.BaselineSize),
		zap.Int("duplicates", plan.Summary.Duplicates),
		zap.Int("to_add", plan.Summary.ToAdd),
		zap.Int("to_update", plan.Summary.ToUpdate),
		zap.Int("to_delete", plan.Summary.ToDelete),
	)
	return plan, nil
}

func (e *Engine[T]) baseline(ctx context.Context) (map[string]struct{}, error) {
	if e.spec.FailOnBaselineError {
		if loader, ok := e.spec.Store.(BaselineLoader); ok {
			codes, err := loader.LoadActiveCodes(ctx)
			if err != nil {
				return nil, &StoreError{Op: ActionBaseline, Key: e.spec.Name, Err: err}
			}
			return codes, nil
		}
	}

	codes := e.spec.Store.ExistingActiveCodes(ctx)
	if codes == nil {
		codes = map[string]struct{}{}
	}
	return codes, nil
}

// Run performs one full reconciliation: plan, then apply.
// Every failure is captured in the returned result.
func (e *Engine[T]) Run(ctx context.Context) SyncResult {
	started := e.now()
	runID := uuid.NewString()
	l := e.logger.With(zap.String("run_id", runID))
	l.Info("Reconciliation started")

	plan, err := e.Plan(ctx)
	if err != nil {
		l.Error("Reconciliation aborted", zap.Error(err))
		return SyncResult{
			RunID:      runID,
			Success:    false,
			Errors:     []string{err.Error()},
			Timestamp:  started,
			DurationMS: e.now().Sub(started).Milliseconds(),
		}
	}

	result := e.apply(ctx, l, plan)
	result.RunID = runID
	result.Timestamp = started
	result.DurationMS = e.now().Sub(started).Milliseconds()

	l.Info("Reconciliation finished",
		zap.Bool("success", result.Success),
		zap.Int("added", result.Added),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
		zap.Int("errors", len(result.Errors)),
		zap.Int64("duration_ms", result.DurationMS),
	)
	return result
}

// apply executes a computed plan: deletes, then updates, then additions.
// A failure on one record is recorded and the batch continues.
func (e *Engine[T]) apply(ctx context.Context, l *zap.Logger, plan *Plan[T]) SyncResult {
	result := SyncResult{Errors: []string{}}

	record := func(op ActionType, key string, err error) bool {
		if err == nil {
			return true
		}
		msg := describe(op, key, err)
		l.Warn("Record operation failed", zap.String("op", string(op)), zap.String("key", key), zap.Error(err))
		result.Errors = append(result.Errors, msg)
		return false
	}

	for _, key := range plan.ToDelete {
		if record(ActionDelete, key, e.guarded(ctx, func() error {
			return e.spec.Store.SoftDelete(ctx, key)
		})) {
			result.Deleted++
		}
	}

	for _, item := range plan.ToUpdate {
		if record(ActionUpdate, e.spec.Key(item), e.guarded(ctx, func() error {
			return e.spec.Store.Update(ctx, item)
		})) {
			result.Updated++
		}
	}

	for _, item := range plan.ToAdd {
		if record(ActionAdd, e.spec.Key(item), e.guarded(ctx, func() error {
			return e.spec.Store.Insert(ctx, item)
		})) {
			result.Added++
		}
	}

	result.Success = len(result.Errors) == 0
	return result
}

// guarded runs one store operation, converting a cancelled context or a panic
// into an error for that record only.
func (e *Engine[T]) guarded(ctx context.Context, op func() error) (err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return op()
}
