package listings

import (
	"fmt"
	"time"
)

// SyncConfig holds configuration for scheduled and triggered runs.
type SyncConfig struct {
	// Interval is a Go duration (e.g. "15m") between scheduled runs. Empty disables the scheduler.
	Interval string `mapstructure:"interval" default:""`
	// FailOnBaselineError aborts a run when active codes cannot be read, instead of
	// treating the table as empty.
	FailOnBaselineError bool `mapstructure:"fail_on_baseline_error" default:"false"`
	// ReviveSoftDeleted lets an add reactivate a soft-deleted row with the same
	// code. When off, such an add fails on the unique key.
	ReviveSoftDeleted bool `mapstructure:"revive_soft_deleted" default:"false"`
}

// ScheduleInterval parses Interval. Zero means no schedule.
func (c SyncConfig) ScheduleInterval() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid sync interval %q: %w", c.Interval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid sync interval %q: must be positive", c.Interval)
	}
	return d, nil
}
