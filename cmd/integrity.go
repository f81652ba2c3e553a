package cmd

import (
	"context"
	"fmt"

	"listing-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the listings table schema and the export bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the imoveis table against the listing model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the export bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}

func runIntegrityChecks(ctx context.Context, runSchema, runStorage bool) error {
	a, err := newApp(ctx, appOptions{database: runSchema})
	if err != nil {
		return err
	}
	defer a.Close()
	logg := a.logger

	svc := integrity.NewService(a.storage, a.cfg.Storage.Bucket, a.cfg.Storage.Region, logg, a.db)
	healthy := true

	if runSchema {
		logg.Info("Checking listings schema...", zap.String("driver", a.cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
			healthy = false
		} else if report.Matched {
			logg.Info("Schema matches the listing model.")
		} else {
			healthy = false
			logg.Warn("Schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking export bucket...", zap.String("bucket", a.cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		switch {
		case err != nil:
			logg.Error("Storage check failed", zap.Error(err))
			healthy = false
		case report.Exists:
			logg.Info("Export bucket is present.", zap.Int("exports", report.Exports), zap.String("latest", report.Latest))
		case fixFlag:
			logg.Info("Creating export bucket...")
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
			logg.Info("Export bucket created.")
		default:
			healthy = false
			logg.Warn("Export bucket is missing. Run with --fix to create it.")
		}
	}

	if !healthy {
		return fmt.Errorf("integrity checks failed")
	}
	return nil
}
