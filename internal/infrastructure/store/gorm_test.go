package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s
}

func TestGormStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	_, err := s.Get(ctx, "bridallink_tasks")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "bridallink_tasks", `[{"id":"t1"}]`))
	v, err := s.Get(ctx, "bridallink_tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t1"}]`, v)
}

func TestGormStoreSetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	var count int64
	require.NoError(t, s.db.Model(&Entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert must not duplicate rows")
}

func TestGormStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is a no-op
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestGormStoreGetPropagatesBackendError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "kv_entries"`).
		WillReturnError(assert.AnError)

	s := &GormStore{db: db}
	_, err = s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
