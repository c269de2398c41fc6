package task

import (
	"context"
	"testing"

	syncapp "github.com/bridallink/backend/internal/application/sync"
	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/shared"
	domain "github.com/bridallink/backend/internal/domain/task"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *persistence.Collection[budget.Expense]) {
	st := store.NewMemoryStore()
	tasks := persistence.NewCollection[domain.Task](st, domain.Key)
	expenses := persistence.NewCollection[budget.Expense](st, budget.ExpensesKey)
	return NewService(tasks, syncapp.NewBridge(expenses, nil)), expenses
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), CreateTaskRequest{Title: "Book venue"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskRequest{Title: ""})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.Create(ctx, CreateTaskRequest{Title: "Bad priority", Priority: "urgent"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	negative := decimal.NewFromInt(-1)
	_, err = svc.Create(ctx, CreateTaskRequest{Title: "Bad cost", Cost: &negative})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{Title: "Order invitations"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, created.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	_, err = svc.SetStatus(ctx, created.ID, domain.Status("done"))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSyncToBudget(t *testing.T) {
	svc, expenses := newTestService()
	ctx := context.Background()

	cost := decimal.NewFromInt(350)
	created, err := svc.Create(ctx, CreateTaskRequest{Title: "Order cake", Cost: &cost})
	require.NoError(t, err)

	expense, err := svc.SyncToBudget(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "task-"+created.ID, expense.ID)
	assert.True(t, cost.Equal(expense.Amount))
	assert.Len(t, expenses.All(ctx), 1)
}

func TestSyncToBudgetWithoutCost(t *testing.T) {
	svc, expenses := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskRequest{Title: "Write vows"})
	require.NoError(t, err)

	_, err = svc.SyncToBudget(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNothingToSync)
	assert.Empty(t, expenses.All(ctx))

	_, err = svc.SyncToBudget(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
