package listings

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunEvery triggers a guarded sync on every tick until ctx is cancelled.
// Ticks that fire while a run is in flight join that run.
func (s *Service) RunEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	s.logger.Info("Scheduled sync enabled", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduled sync stopped")
			return
		case <-ticker.C:
			result, shared := s.Sync(ctx)
			s.logger.Info("Scheduled sync finished",
				zap.String("run_id", result.RunID),
				zap.Bool("success", result.Success),
				zap.Bool("shared", shared),
				zap.Int("added", result.Added),
				zap.Int("updated", result.Updated),
				zap.Int("deleted", result.Deleted),
				zap.Int("errors", len(result.Errors)))
		}
	}
}
