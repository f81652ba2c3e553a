package cmd

import (
	"context"
	"fmt"
	"os"

	"listing-sync/feature/listings/models"
	"listing-sync/feature/listings/source"
	"listing-sync/feature/listings/statement"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFile   string
	exportOutput string
	exportUpload bool
)

// exportCmd renders the feed as INSERT statements.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the feed as SQL INSERT statements",
	Long: `Renders every listing of the feed, or of a local XML file, as an INSERT statement
for the imoveis table. Output goes to stdout unless --output is set.

Examples:
  export > listings.sql
  export --file feed.xml --output listings.sql
  export --upload`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "Read listings from a local XML file instead of the feed URL")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Write statements to this file")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Upload the export to object storage")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	items, err := loadListings(ctx, a)
	if err != nil {
		return err
	}
	sql := statement.FormatAll(items)

	switch exportOutput {
	case "":
		if !exportUpload {
			fmt.Fprintln(cmd.OutOrStdout(), sql)
		}
	default:
		if err := os.WriteFile(exportOutput, []byte(sql+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		a.logger.Info("SQL export written", zap.String("file", exportOutput), zap.Int("statements", len(items)))
	}

	if exportUpload {
		info, err := a.service.UploadSQL(ctx, sql, len(items))
		if err != nil {
			return fmt.Errorf("failed to upload export: %w", err)
		}
		a.logger.Info("SQL export uploaded", zap.String("bucket", info.Bucket), zap.String("object", info.Object))
	}
	return nil
}

func loadListings(ctx context.Context, a *app) ([]models.Listing, error) {
	if exportFile == "" {
		return a.service.Feed(ctx)
	}

	f, err := os.Open(exportFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", exportFile, err)
	}
	defer f.Close()

	items, skipped, err := source.Parse(f)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Parsed local feed", zap.String("file", exportFile), zap.Int("listings", len(items)), zap.Int("skipped", skipped))
	return items, nil
}
