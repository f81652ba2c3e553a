package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrRunInProgress is reported when another process holds the run lock.
var ErrRunInProgress = errors.New("sync already in progress")

// Locker serializes runs across processes.
type Locker interface {
	// TryLock acquires the lock without waiting. When ok is true the caller
	// must invoke release once the run is over.
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

// Guard coalesces concurrent runs in this process and, when a Locker is set,
// refuses to start a run while another process holds the lock.
type Guard struct {
	sf     singleflight.Group
	locker Locker
	logger *zap.Logger
}

// NewGuard creates a guard. locker may be nil.
func NewGuard(locker Locker, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{locker: locker, logger: logger}
}

// Do runs fn unless an identical run is already in flight, in which case the
// caller waits for and shares that run's result. shared reports whether the
// result came from another caller's run.
func (g *Guard) Do(ctx context.Context, name string, fn func(ctx context.Context) SyncResult) (result SyncResult, shared bool) {
	v, _, shared := g.sf.Do(name, func() (interface{}, error) {
		return g.locked(ctx, name, fn), nil
	})
	return v.(SyncResult), shared
}

func (g *Guard) locked(ctx context.Context, name string, fn func(ctx context.Context) SyncResult) SyncResult {
	if g.locker == nil {
		return fn(ctx)
	}

	release, ok, err := g.locker.TryLock(ctx)
	if err != nil {
		g.logger.Error("Run lock unavailable", zap.String("sync", name), zap.Error(err))
		return failed(fmt.Errorf("run lock: %w", err))
	}
	if !ok {
		g.logger.Info("Run skipped, lock held elsewhere", zap.String("sync", name))
		return failed(ErrRunInProgress)
	}
	defer release()

	return fn(ctx)
}

func failed(err error) SyncResult {
	return SyncResult{
		Success:   false,
		Errors:    []string{err.Error()},
		Timestamp: time.Now(),
	}
}
