package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-sync/core/reconcile"
	"listing-sync/feature/listings/mapping"
	"listing-sync/feature/listings/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotConnected is returned when the repository has no database handle.
var ErrNotConnected = errors.New("database not connected")

// ErrNotFound is returned by FindByCode for unknown codes.
var ErrNotFound = errors.New("listing not found")

// Repository persists listings in the imoveis table through gorm.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
	revive bool
}

// NewRepository creates a repository. db may be nil when the database is
// unavailable; reads then degrade and writes fail per record.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger, now: time.Now}
}

// WithRevive controls whether Insert reactivates a soft-deleted row with the
// same code instead of failing on the unique key.
func (r *Repository) WithRevive(enabled bool) *Repository {
	r.revive = enabled
	return r
}

// Migrate creates or updates the imoveis table.
func (r *Repository) Migrate(ctx context.Context) error {
	if r.db == nil {
		return ErrNotConnected
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Row{}); err != nil {
		return fmt.Errorf("migrate %s: %w", models.TableName, err)
	}
	return nil
}

// LoadActiveCodes returns the codes of all active rows.
func (r *Repository) LoadActiveCodes(ctx context.Context) (map[string]struct{}, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}

	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.Row{}).
		Where("ativo = ?", true).
		Pluck("codigo", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("load active codes: %w", err)
	}

	out := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		out[c] = struct{}{}
	}
	return out, nil
}

// ExistingActiveCodes is LoadActiveCodes that degrades to an empty set.
func (r *Repository) ExistingActiveCodes(ctx context.Context) map[string]struct{} {
	codes, err := r.LoadActiveCodes(ctx)
	if err != nil {
		r.logger.Warn("Failed to read active listing codes, using empty baseline", zap.Error(err))
		return map[string]struct{}{}
	}
	return codes
}

// Insert creates the row for l. Any existing row with the same code violates
// the unique key and fails. With WithRevive(true) a soft-deleted row is
// reactivated in place instead.
func (r *Repository) Insert(ctx context.Context, l models.Listing) error {
	row := mapping.Normalize(l)
	if r.db == nil {
		return &reconcile.StoreError{Op: reconcile.ActionAdd, Key: row.Code, Err: ErrNotConnected}
	}

	now := r.now()
	if !r.revive {
		row.CreatedAt = now
		row.UpdatedAt = now
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return &reconcile.StoreError{Op: reconcile.ActionAdd, Key: row.Code, Err: err}
		}
		return nil
	}

	revived := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := row.Assignments()
		values["updated_at"] = now

		res := tx.Model(&models.Row{}).
			Where("codigo = ? AND ativo = ?", row.Code, false).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			revived = true
			return nil
		}

		row.CreatedAt = now
		row.UpdatedAt = now
		return tx.Create(&row).Error
	})
	if err != nil {
		return &reconcile.StoreError{Op: reconcile.ActionAdd, Key: row.Code, Err: err}
	}

	if revived {
		r.logger.Info("Revived soft-deleted listing", zap.String("code", row.Code))
	}
	return nil
}

// Update overwrites every mutable column of the row matching l's code and
// marks it active. A missing row is not an error.
func (r *Repository) Update(ctx context.Context, l models.Listing) error {
	row := mapping.Normalize(l)
	if r.db == nil {
		return &reconcile.StoreError{Op: reconcile.ActionUpdate, Key: row.Code, Err: ErrNotConnected}
	}

	values := row.Assignments()
	values["updated_at"] = r.now()

	res := r.db.WithContext(ctx).
		Model(&models.Row{}).
		Where("codigo = ?", row.Code).
		Updates(values)
	if res.Error != nil {
		return &reconcile.StoreError{Op: reconcile.ActionUpdate, Key: row.Code, Err: res.Error}
	}
	if res.RowsAffected == 0 {
		r.logger.Debug("Update matched no rows", zap.String("code", row.Code))
	}
	return nil
}

// SoftDelete marks the row inactive. Rows are never removed.
func (r *Repository) SoftDelete(ctx context.Context, code string) error {
	if r.db == nil {
		return &reconcile.StoreError{Op: reconcile.ActionDelete, Key: code, Err: ErrNotConnected}
	}

	err := r.db.WithContext(ctx).
		Model(&models.Row{}).
		Where("codigo = ?", code).
		Updates(map[string]any{"ativo": false, "updated_at": r.now()}).Error
	if err != nil {
		return &reconcile.StoreError{Op: reconcile.ActionDelete, Key: code, Err: err}
	}
	return nil
}

// FindByCode returns the stored row for code, active or not.
func (r *Repository) FindByCode(ctx context.Context, code string) (*models.Row, error) {
	if r.db == nil {
		return nil, ErrNotConnected
	}

	var row models.Row
	err := r.db.WithContext(ctx).Where("codigo = ?", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find listing %s: %w", code, err)
	}
	return &row, nil
}
