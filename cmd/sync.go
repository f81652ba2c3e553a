package cmd

import (
	"context"
	"fmt"

	"listing-sync/core/reconcile"
	"listing-sync/feature/listings/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd runs one reconciliation from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the listings table with the feed",
	Long: `Fetches the feed, compares it with the active listings in the database and
applies soft deletes, updates and additions in that order.

Examples:
  # Show what would change
  sync --dry-run

  # Apply
  sync`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Report the plan without writing")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, appOptions{database: true, requireDatabase: true, migrate: true})
	if err != nil {
		return err
	}
	defer a.Close()

	if dryRunSync {
		a.logger.Info("Planning sync...")
		plan, err := a.service.Plan(ctx)
		if err != nil {
			return fmt.Errorf("failed to plan sync: %w", err)
		}
		printPlan(a.logger, plan)
		a.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}

	result, _ := a.service.Sync(ctx)
	logResult(a.logger, result)
	if !result.Success {
		return fmt.Errorf("sync finished with %d error(s)", len(result.Errors))
	}
	return nil
}

// printPlan logs the plan summary and every planned action.
func printPlan(l *zap.Logger, plan *reconcile.Plan[models.Listing]) {
	s := plan.Summary
	l.Info("Sync plan",
		zap.Int("snapshot", s.SnapshotSize),
		zap.Int("baseline", s.BaselineSize),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("to_add", s.ToAdd),
		zap.Int("to_update", s.ToUpdate),
		zap.Int("to_delete", s.ToDelete),
	)
	for _, a := range plan.Actions {
		l.Debug("Planned action", zap.String("type", string(a.Type)), zap.String("code", a.Key))
	}
}
