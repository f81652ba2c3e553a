package cmd

import (
	"fmt"
	"os"

	"listing-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "listing-sync",
	Short: "Real-estate listing feed synchronizer",
	Long: `listing-sync mirrors an external XML real-estate feed into a relational table.
Listings are added, updated and soft-deleted so the table always reflects the feed,
and the feed can be exported as portable INSERT statements.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
