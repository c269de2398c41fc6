package sync

import (
	"context"
	"testing"
	"time"

	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/document"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/domain/task"
	"github.com/bridallink/backend/internal/domain/vendors"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridge(t *testing.T) (*Bridge, *persistence.Collection[budget.Expense], *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	expenses := persistence.NewCollection[budget.Expense](st, budget.ExpensesKey)
	b := NewBridge(expenses, nil)
	b.now = func() time.Time { return time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC) }
	return b, expenses, st
}

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestSyncVendorCreatesDerivedExpense(t *testing.T) {
	ctx := context.Background()
	b, expenses, _ := newBridge(t)

	v := vendors.Vendor{
		ID:          "v1",
		Name:        "Acme Catering",
		Category:    "caterer",
		Status:      vendors.StatusQuoted,
		QuotedPrice: decimalPtr(2500),
	}

	expense, err := b.SyncVendor(ctx, v)
	require.NoError(t, err)

	assert.Equal(t, "vendor-v1", expense.ID)
	assert.True(t, decimal.NewFromInt(2500).Equal(expense.Amount))
	assert.Equal(t, "Acme Catering", expense.Vendor)
	assert.False(t, expense.Paid)
	assert.Equal(t, budget.SyncSourceVendor, expense.SyncSource)
	assert.Equal(t, "v1", expense.SyncID)
	assert.Equal(t, "Synced from Vendor Manager", expense.Notes)

	stored := expenses.All(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, expense, stored[0])
}

func TestSyncVendorIsIdempotent(t *testing.T) {
	ctx := context.Background()
	b, expenses, _ := newBridge(t)

	v := vendors.Vendor{ID: "v1", Name: "Acme Catering", Status: vendors.StatusQuoted, QuotedPrice: decimalPtr(2500)}

	_, err := b.SyncVendor(ctx, v)
	require.NoError(t, err)
	_, err = b.SyncVendor(ctx, v)
	require.NoError(t, err)

	stored := expenses.All(ctx)
	require.Len(t, stored, 1, "repeated sync must not duplicate the expense")
	assert.Equal(t, "vendor-v1", stored[0].ID)
}

func TestSyncVendorUpdatesInPlaceOnStatusChange(t *testing.T) {
	ctx := context.Background()
	b, expenses, _ := newBridge(t)

	v := vendors.Vendor{ID: "v1", Name: "Acme Catering", Status: vendors.StatusQuoted, QuotedPrice: decimalPtr(2500)}
	_, err := b.SyncVendor(ctx, v)
	require.NoError(t, err)

	v.Status = vendors.StatusPaid
	updated, err := b.SyncVendor(ctx, v)
	require.NoError(t, err)

	stored := expenses.All(ctx)
	require.Len(t, stored, 1, "length must be unchanged after re-sync")
	assert.Equal(t, "vendor-v1", stored[0].ID)
	assert.True(t, stored[0].Paid)
	assert.Equal(t, updated, stored[0])
}

func TestSyncVendorPrefersQuotedOverFinalPrice(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newBridge(t)

	both := vendors.Vendor{ID: "v1", Name: "Band", QuotedPrice: decimalPtr(1200), FinalPrice: decimalPtr(1500)}
	expense, err := b.SyncVendor(ctx, both)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1200).Equal(expense.Amount))

	finalOnly := vendors.Vendor{ID: "v2", Name: "Florist", FinalPrice: decimalPtr(800)}
	expense, err = b.SyncVendor(ctx, finalOnly)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(800).Equal(expense.Amount))
}

func TestSyncTaskWithoutCostMakesNoWrites(t *testing.T) {
	ctx := context.Background()
	b, expenses, st := newBridge(t)

	_, err := b.SyncTask(ctx, task.Task{ID: "t1", Title: "Book photographer"})
	assert.ErrorIs(t, err, shared.ErrNothingToSync)

	assert.Empty(t, expenses.All(ctx))
	_, storeErr := st.Get(ctx, budget.ExpensesKey)
	assert.ErrorIs(t, storeErr, store.ErrKeyNotFound, "guard failure must not touch the store")
}

func TestSyncTaskDerivesPaidFromCompletion(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newBridge(t)

	done := task.Task{ID: "t1", Title: "Order invitations", Category: "stationery", Status: task.StatusCompleted, Cost: decimalPtr(150)}
	expense, err := b.SyncTask(ctx, done)
	require.NoError(t, err)
	assert.Equal(t, "task-t1", expense.ID)
	assert.Equal(t, "stationery", expense.Category)
	assert.True(t, expense.Paid)

	pending := task.Task{ID: "t2", Title: "Hire band", Status: task.StatusPending, Cost: decimalPtr(900)}
	expense, err = b.SyncTask(ctx, pending)
	require.NoError(t, err)
	assert.False(t, expense.Paid)
	assert.Equal(t, "other", expense.Category, "missing category falls back to other")
}

func TestSyncDocument(t *testing.T) {
	ctx := context.Background()
	b, expenses, _ := newBridge(t)

	d := document.Document{ID: "d1", Name: "Venue contract", Category: "venue", Amount: decimalPtr(5000), Vendor: "Grand Hall"}
	expense, err := b.SyncDocument(ctx, d)
	require.NoError(t, err)

	assert.Equal(t, "document-d1", expense.ID)
	assert.Equal(t, "Grand Hall", expense.Vendor)
	assert.False(t, expense.Paid)
	require.Len(t, expenses.All(ctx), 1)

	_, err = b.SyncDocument(ctx, document.Document{ID: "d2", Name: "Moodboard"})
	assert.ErrorIs(t, err, shared.ErrNothingToSync)
	assert.Len(t, expenses.All(ctx), 1)
}

func TestSyncLeavesOtherExpensesUntouched(t *testing.T) {
	ctx := context.Background()
	b, expenses, _ := newBridge(t)

	expenses.Upsert(ctx, budget.Expense{ID: "manual-1", Description: "Dress", Amount: decimal.NewFromInt(1200)})

	_, err := b.SyncVendor(ctx, vendors.Vendor{ID: "v1", Name: "Acme", QuotedPrice: decimalPtr(100)})
	require.NoError(t, err)

	stored := expenses.All(ctx)
	require.Len(t, stored, 2)
	assert.Equal(t, "manual-1", stored[0].ID)
	assert.Equal(t, "Dress", stored[0].Description)
}
