package checks

import (
	"context"
	"fmt"
	"sort"

	"listing-sync/core/storage"

	"go.uber.org/zap"
)

// StorageReport describes the export bucket.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Exports int    `json:"exports"`
	Latest  string `json:"latest,omitempty"`
}

// CheckStorage reports whether the export bucket exists and what it holds
// under prefix.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is nil")
	}

	report := &StorageReport{Bucket: bucket}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	keys, err := storage.ListKeys(ctx, client, bucket, prefix)
	if err != nil {
		return nil, err
	}
	report.Exports = len(keys)
	if len(keys) > 0 {
		// export keys embed a sortable UTC timestamp
		sort.Strings(keys)
		report.Latest = keys[len(keys)-1]
	}
	return report, nil
}

// FixStorage creates the export bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if client == nil {
		return fmt.Errorf("storage client is nil")
	}
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create export bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Export bucket ready", zap.String("bucket", bucket))
	return nil
}
