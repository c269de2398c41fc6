// Package sync implements the one-directional bridge that derives
// budget expenses from cost-bearing task, vendor and document records.
package sync

import (
	"context"
	"time"

	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/document"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/domain/task"
	"github.com/bridallink/backend/internal/domain/vendors"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Bridge derives budget expenses from other modules' records. It holds
// no state of its own: every sync is an upsert through the budget
// expense repository, which serializes writes to the shared key, so two
// syncs firing in quick succession cannot lose each other's update.
//
// Sync is pull-triggered and one-directional. A manual edit of a synced
// expense is overwritten by the next sync of its source record
// (last-sync-wins); there is no reconciliation in the other direction.
type Bridge struct {
	expenses *persistence.Collection[budget.Expense]
	now      func() time.Time
	log      *zap.Logger
}

// NewBridge creates a sync bridge writing through the given expense
// repository
func NewBridge(expenses *persistence.Collection[budget.Expense], log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		expenses: expenses,
		now:      time.Now,
		log:      log,
	}
}

// SyncTask upserts the expense derived from a task's cost. Tasks
// without a cost cannot be synced.
func (b *Bridge) SyncTask(ctx context.Context, t task.Task) (budget.Expense, error) {
	amount, ok := t.SyncAmount()
	if !ok {
		return budget.Expense{}, shared.ErrNothingToSync
	}

	expense := budget.Expense{
		ID:          budget.DerivedID(budget.SyncSourceTask, t.ID),
		Category:    fallbackCategory(t.Category),
		Description: t.Title,
		Amount:      amount,
		Date:        b.now(),
		Vendor:      t.Vendor,
		Paid:        t.Status == task.StatusCompleted,
		Notes:       "Synced from " + budget.SyncSourceTask.DisplayName(),
		SyncSource:  budget.SyncSourceTask,
		SyncID:      t.ID,
	}
	b.upsert(ctx, expense)
	return expense, nil
}

// SyncVendor upserts the expense derived from a vendor's quoted price,
// falling back to the final price. The expense is marked paid once the
// vendor reaches the paid or completed status.
func (b *Bridge) SyncVendor(ctx context.Context, v vendors.Vendor) (budget.Expense, error) {
	amount, ok := v.SyncAmount()
	if !ok {
		return budget.Expense{}, shared.ErrNothingToSync
	}

	expense := budget.Expense{
		ID:          budget.DerivedID(budget.SyncSourceVendor, v.ID),
		Category:    fallbackCategory(v.Category),
		Description: v.Name,
		Amount:      amount,
		Date:        b.now(),
		Vendor:      v.Name,
		Paid:        v.Status.IsSettled(),
		Notes:       "Synced from " + budget.SyncSourceVendor.DisplayName(),
		SyncSource:  budget.SyncSourceVendor,
		SyncID:      v.ID,
	}
	b.upsert(ctx, expense)
	return expense, nil
}

// SyncDocument upserts the expense derived from a document's amount
func (b *Bridge) SyncDocument(ctx context.Context, d document.Document) (budget.Expense, error) {
	amount, ok := d.SyncAmount()
	if !ok {
		return budget.Expense{}, shared.ErrNothingToSync
	}

	expense := budget.Expense{
		ID:          budget.DerivedID(budget.SyncSourceDocument, d.ID),
		Category:    fallbackCategory(d.Category),
		Description: d.Name,
		Amount:      amount,
		Date:        b.now(),
		Vendor:      d.Vendor,
		Paid:        false,
		Notes:       "Synced from " + budget.SyncSourceDocument.DisplayName(),
		SyncSource:  budget.SyncSourceDocument,
		SyncID:      d.ID,
	}
	b.upsert(ctx, expense)
	return expense, nil
}

func (b *Bridge) upsert(ctx context.Context, expense budget.Expense) {
	b.expenses.Upsert(ctx, expense)
	b.log.Info("synced expense into budget",
		zap.String("expense_id", expense.ID),
		zap.String("source", expense.SyncSource.String()),
		zap.String("amount", expense.Amount.String()))
}

func fallbackCategory(category string) string {
	if category == "" {
		return "other"
	}
	return category
}
