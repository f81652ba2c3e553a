package listings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-sync/core/reconcile"
	"listing-sync/core/storage"
	"listing-sync/feature/listings/models"
	"listing-sync/feature/listings/statement"

	"go.uber.org/zap"
)

// ExportPrefix is the object key prefix of uploaded SQL exports.
const ExportPrefix = "exports/"

// ErrStorageDisabled is returned by upload operations without a storage client.
var ErrStorageDisabled = errors.New("object storage is not configured")

// Store is the record store the service reconciles against.
type Store interface {
	reconcile.Store[models.Listing]
	FindByCode(ctx context.Context, code string) (*models.Row, error)
}

// ExportInfo describes an uploaded SQL export.
type ExportInfo struct {
	Bucket     string `json:"bucket"`
	Object     string `json:"object"`
	Size       int64  `json:"size"`
	Statements int    `json:"statements"`
}

// Service handles listing synchronization and exports.
type Service struct {
	source reconcile.Source[models.Listing]
	store  Store
	engine *reconcile.Engine[models.Listing]
	guard  *reconcile.Guard
	client storage.Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new listings service. guard and client may be nil.
func NewService(source reconcile.Source[models.Listing], store Store, guard *reconcile.Guard, client storage.Client, bucket string, logger *zap.Logger, cfg SyncConfig) *Service {
	if guard == nil {
		guard = reconcile.NewGuard(nil, logger)
	}
	engine := reconcile.NewEngine(reconcile.Spec[models.Listing]{
		Name:                "listings",
		Source:              source,
		Store:               store,
		Key:                 models.Key,
		FailOnBaselineError: cfg.FailOnBaselineError,
	}, logger)

	return &Service{
		source: source,
		store:  store,
		engine: engine,
		guard:  guard,
		client: client,
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// Sync runs one guarded reconciliation. shared is true when the result came
// from a run another caller had already started.
func (s *Service) Sync(ctx context.Context) (reconcile.SyncResult, bool) {
	return s.guard.Do(ctx, "listings", s.engine.Run)
}

// Plan computes what a sync would do without writing anything.
func (s *Service) Plan(ctx context.Context) (*reconcile.Plan[models.Listing], error) {
	return s.engine.Plan(ctx)
}

// Feed fetches and normalizes the current feed.
func (s *Service) Feed(ctx context.Context) ([]models.Listing, error) {
	return s.source.Fetch(ctx)
}

// ExportSQL renders the current feed as INSERT statements.
func (s *Service) ExportSQL(ctx context.Context) (string, int, error) {
	items, err := s.source.Fetch(ctx)
	if err != nil {
		return "", 0, err
	}
	return statement.FormatAll(items), len(items), nil
}

// UploadExport renders the current feed and stores it in the export bucket.
func (s *Service) UploadExport(ctx context.Context) (*ExportInfo, error) {
	sql, n, err := s.ExportSQL(ctx)
	if err != nil {
		return nil, err
	}
	return s.UploadSQL(ctx, sql, n)
}

// UploadSQL stores an already rendered export as exports/listings-<timestamp>.sql.
func (s *Service) UploadSQL(ctx context.Context, sql string, statements int) (*ExportInfo, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, ""); err != nil {
		return nil, err
	}

	object := fmt.Sprintf("%slistings-%s.sql", ExportPrefix, s.now().UTC().Format("20060102T150405Z"))
	info, err := storage.PutText(ctx, s.client, s.bucket, object, "application/sql; charset=utf-8", sql)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Uploaded SQL export",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int("statements", statements))

	return &ExportInfo{Bucket: s.bucket, Object: object, Size: info.Size, Statements: statements}, nil
}

// Exports lists the keys of previously uploaded exports.
func (s *Service) Exports(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return storage.ListKeys(ctx, s.client, s.bucket, ExportPrefix)
}

// Stored returns the persisted row for code.
func (s *Service) Stored(ctx context.Context, code string) (*models.Row, error) {
	return s.store.FindByCode(ctx, code)
}
