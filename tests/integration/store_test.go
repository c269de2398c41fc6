//go:build integration

// Package integration verifies the key-value store against a real
// PostgreSQL instance using testcontainers.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPostgresStore(t *testing.T) *store.GormStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bridallink_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	kv, err := store.NewGormStore(db)
	require.NoError(t, err)
	return kv
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	kv := newPostgresStore(t)
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	require.NoError(t, kv.Set(ctx, "k", "v2"))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestPostgresStoreBacksCollections(t *testing.T) {
	kv := newPostgresStore(t)
	ctx := context.Background()

	expenses := persistence.NewCollection[budget.Expense](kv, budget.ExpensesKey)
	created := expenses.Create(ctx, func(id string) budget.Expense {
		return budget.Expense{
			ID:          id,
			Category:    "venue",
			Description: "Deposit",
			Amount:      decimal.NewFromInt(1200),
			Date:        time.Now(),
		}
	})

	// a fresh repository over the same store sees the persisted record
	reloaded := persistence.NewCollection[budget.Expense](kv, budget.ExpensesKey)
	got, ok := reloaded.Get(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, "Deposit", got.Description)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.Amount))
}
