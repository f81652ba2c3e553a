package cmd

import (
	"context"
	"fmt"
	"time"

	"listing-sync/core/config"
	"listing-sync/core/database"
	"listing-sync/core/lock"
	"listing-sync/core/logger"
	"listing-sync/core/reconcile"
	"listing-sync/core/storage"
	"listing-sync/feature/listings"
	"listing-sync/feature/listings/source"
	"listing-sync/feature/listings/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// appOptions selects which dependencies a command needs.
type appOptions struct {
	// database connects to the database; requireDatabase turns a failure into an error.
	database        bool
	requireDatabase bool
	// migrate runs AutoMigrate when database.auto_migrate is set.
	migrate bool
}

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	repo    *store.Repository
	storage storage.Client
	redis   *redis.Client
	feed    *source.Feed
	service *listings.Service
}

func newApp(ctx context.Context, opts appOptions) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	a := &app{cfg: cfg, logger: logg}

	if opts.database {
		conn, err := database.Connect(cfg.Database)
		switch {
		case err != nil && opts.requireDatabase:
			return nil, fmt.Errorf("database connection required: %w", err)
		case err != nil:
			logg.Warn("Optional database connection failed", zap.Error(err))
		default:
			a.db = conn
			logg.Info("Connected to database",
				zap.String("driver", cfg.Database.Driver),
				zap.String("name", cfg.Database.Name))
		}
	}

	a.repo = store.NewRepository(a.db, logg).WithRevive(cfg.Sync.ReviveSoftDeleted)
	if a.db != nil && opts.migrate && cfg.Database.AutoMigrate {
		if err := a.repo.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Object storage unavailable, uploads disabled", zap.Error(err))
	} else {
		a.storage = client
	}

	var locker reconcile.Locker
	if cfg.Lock.Enabled {
		l, client := lock.NewFromConfig(cfg.Lock)
		a.redis = client
		locker = l
		logg.Info("Run lock enabled", zap.String("redis", cfg.Lock.RedisAddr), zap.String("key", cfg.Lock.Key))
	}

	a.feed = source.NewFeed(cfg.Feed, logg)
	a.service = listings.NewService(
		a.feed,
		a.repo,
		reconcile.NewGuard(locker, logg),
		a.storage,
		cfg.Storage.Bucket,
		logg,
		cfg.Sync,
	)
	return a, nil
}

// Close releases connections held by the app.
func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.logger.Sync()
}

// logResult writes a run summary at a level matching its outcome.
func logResult(l *zap.Logger, result reconcile.SyncResult) {
	fields := []zap.Field{
		zap.String("run_id", result.RunID),
		zap.Int("added", result.Added),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
		zap.Int("errors", len(result.Errors)),
		zap.Duration("duration", time.Duration(result.DurationMS)*time.Millisecond),
	}
	if result.Success {
		l.Info("Sync completed", fields...)
		return
	}
	l.Warn("Sync completed with errors", fields...)
	for _, e := range result.Errors {
		l.Warn("Sync error", zap.String("error", e))
	}
}
