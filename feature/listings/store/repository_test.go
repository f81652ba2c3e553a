package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"listing-sync/core/reconcile"
	"listing-sync/feature/listings/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := NewRepository(db, zap.NewNop())
	require.NoError(t, repo.Migrate(context.Background()))
	return repo, db
}

func setupMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewRepository(db, zap.NewNop()), mock
}

func listing(code string) models.Listing {
	return models.Listing{
		Code:        code,
		Title:       "Casa " + code,
		City:        "Campinas",
		SalePrice:   "350000.00",
		RentPrice:   "0",
		Bedrooms:    "3",
		Suites:      "0",
		Pool:        "1",
		Elevator:    "0",
		Photos:      []models.Photo{{FileName: "a.jpg", URL: "http://img/a.jpg", Primary: "1"}},
		Realtor:     models.Realtor{Name: "Ana"},
		CreatedDate: "10/01/2024",
	}
}

func TestRepository_InsertAndFind(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, listing("A1")))

	row, err := repo.FindByCode(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, row.Active)
	assert.Equal(t, "Casa A1", row.Title)
	require.NotNil(t, row.SalePrice)
	assert.Equal(t, 350000.0, *row.SalePrice)
	assert.Nil(t, row.RentPrice)
	require.NotNil(t, row.Bedrooms)
	assert.Equal(t, 3, *row.Bedrooms)
	assert.Nil(t, row.Suites)
	assert.True(t, row.Pool)
	assert.False(t, row.Elevator)
	assert.Equal(t, "Ana", row.RealtorName)
	require.Len(t, row.Photos, 1)
	assert.True(t, row.Photos[0].Primary)
	require.NotNil(t, row.CreatedDate)
	assert.Equal(t, "2024-01-10", row.CreatedDate.Format("2006-01-02"))
	assert.False(t, row.CreatedAt.IsZero())

	_, err = repo.FindByCode(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_InsertDuplicateActiveFails(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, listing("A1")))
	err := repo.Insert(ctx, listing("A1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, reconcile.ErrStore))

	var se *reconcile.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, reconcile.ActionAdd, se.Op)
	assert.Equal(t, "A1", se.Key)
}

func TestRepository_ActiveCodesAndSoftDelete(t *testing.T) {
	repo, db := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, listing("A1")))
	require.NoError(t, repo.Insert(ctx, listing("B2")))

	codes := repo.ExistingActiveCodes(ctx)
	assert.Equal(t, map[string]struct{}{"A1": {}, "B2": {}}, codes)

	before, err := repo.FindByCode(ctx, "B2")
	require.NoError(t, err)

	repo.now = func() time.Time { return before.UpdatedAt.Add(time.Hour) }
	require.NoError(t, repo.SoftDelete(ctx, "B2"))

	codes = repo.ExistingActiveCodes(ctx)
	assert.Equal(t, map[string]struct{}{"A1": {}}, codes)

	after, err := repo.FindByCode(ctx, "B2")
	require.NoError(t, err)
	assert.False(t, after.Active)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	var count int64
	require.NoError(t, db.Model(&models.Row{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRepository_UpdateOverwritesColumns(t *testing.T) {
	repo, _ := setupSQLite(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, listing("A1")))

	changed := listing("A1")
	changed.Title = "Casa reformada"
	changed.SalePrice = "0"
	changed.Bedrooms = "4"
	changed.Pool = "0"
	changed.Photos = nil
	require.NoError(t, repo.Update(ctx, changed))

	row, err := repo.FindByCode(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Casa reformada", row.Title)
	assert.Nil(t, row.SalePrice)
	assert.Equal(t, 4, *row.Bedrooms)
	assert.False(t, row.Pool)
	assert.Empty(t, row.Photos)
}

func TestRepository_UpdateMissingIsNoop(t *testing.T) {
	repo, _ := setupSQLite(t)
	assert.NoError(t, repo.Update(context.Background(), listing("nope")))
}

func TestRepository_InsertSoftDeletedFailsByDefault(t *testing.T) {
	repo, db := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, listing("A1")))
	require.NoError(t, repo.SoftDelete(ctx, "A1"))

	back := listing("A1")
	back.Title = "De volta"
	err := repo.Insert(ctx, back)
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrStore)

	row, err := repo.FindByCode(ctx, "A1")
	require.NoError(t, err)
	assert.False(t, row.Active)
	assert.Equal(t, "Casa A1", row.Title)

	var count int64
	require.NoError(t, db.Model(&models.Row{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_InsertRevivesSoftDeleted(t *testing.T) {
	repo, db := setupSQLite(t)
	repo.WithRevive(true)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, listing("A1")))
	require.NoError(t, repo.SoftDelete(ctx, "A1"))

	back := listing("A1")
	back.Title = "De volta"
	require.NoError(t, repo.Insert(ctx, back))

	row, err := repo.FindByCode(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, row.Active)
	assert.Equal(t, "De volta", row.Title)

	var count int64
	require.NoError(t, db.Model(&models.Row{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// an active row is never overwritten by an add
	err = repo.Insert(ctx, listing("A1"))
	assert.ErrorIs(t, err, reconcile.ErrStore)
}

func TestRepository_BaselineFailure(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `codigo` FROM `imoveis` WHERE ativo = ?")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.LoadActiveCodes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `codigo` FROM `imoveis`")).
		WillReturnError(errors.New("connection refused"))
	assert.Empty(t, repo.ExistingActiveCodes(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SoftDeleteFailure(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `imoveis` SET")).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.SoftDelete(context.Background(), "A1")
	var se *reconcile.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, reconcile.ActionDelete, se.Op)
	assert.Equal(t, "delete A1: lock wait timeout", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NilDB(t *testing.T) {
	repo := NewRepository(nil, zap.NewNop())
	ctx := context.Background()

	assert.Empty(t, repo.ExistingActiveCodes(ctx))
	_, err := repo.LoadActiveCodes(ctx)
	assert.ErrorIs(t, err, ErrNotConnected)

	err = repo.Insert(ctx, listing("A1"))
	assert.True(t, errors.Is(err, reconcile.ErrStore))
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.ErrorIs(t, repo.Update(ctx, listing("A1")), ErrNotConnected)
	assert.ErrorIs(t, repo.SoftDelete(ctx, "A1"), ErrNotConnected)
	assert.ErrorIs(t, repo.Migrate(ctx), ErrNotConnected)
}
