package vendors

import (
	"context"
	"testing"

	syncapp "github.com/bridallink/backend/internal/application/sync"
	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/shared"
	domain "github.com/bridallink/backend/internal/domain/vendors"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *persistence.Collection[budget.Expense]) {
	st := store.NewMemoryStore()
	vendors := persistence.NewCollection[domain.Vendor](st, domain.Key)
	expenses := persistence.NewCollection[budget.Expense](st, budget.ExpensesKey)
	return NewService(vendors, syncapp.NewBridge(expenses, nil)), expenses
}

func TestCreateVendorDefaults(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), CreateVendorRequest{
		Name:     "Petal & Stem",
		Category: "florist",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResearching, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestCreateVendorValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateVendorRequest{Name: "", Category: "florist"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.Create(ctx, CreateVendorRequest{Name: "No category"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	negative := decimal.NewFromInt(-50)
	_, err = svc.Create(ctx, CreateVendorRequest{
		Name:        "Bad quote",
		Category:    "catering",
		QuotedPrice: &negative,
	})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestListByCategory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateVendorRequest{Name: "Petal & Stem", Category: "florist"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateVendorRequest{Name: "Golden Spoon", Category: "catering"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateVendorRequest{Name: "Wild Rose", Category: "florist"})
	require.NoError(t, err)

	florists := svc.ListByCategory(ctx, "florist")
	assert.Len(t, florists, 2)
	assert.Len(t, svc.List(ctx), 3)
}

func TestSetVendorStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateVendorRequest{Name: "Petal & Stem", Category: "florist"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, created.ID, domain.StatusBooked)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, updated.Status)

	_, err = svc.SetStatus(ctx, created.ID, domain.Status("hired"))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.SetStatus(ctx, "missing", domain.StatusBooked)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSyncToBudgetPrefersQuotedPrice(t *testing.T) {
	svc, expenses := newTestService()
	ctx := context.Background()

	quoted := decimal.NewFromInt(2500)
	final := decimal.NewFromInt(2300)
	created, err := svc.Create(ctx, CreateVendorRequest{
		Name:        "Golden Spoon",
		Category:    "catering",
		QuotedPrice: &quoted,
		FinalPrice:  &final,
	})
	require.NoError(t, err)

	expense, err := svc.SyncToBudget(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "vendor-"+created.ID, expense.ID)
	assert.True(t, quoted.Equal(expense.Amount))
	assert.False(t, expense.Paid)
	assert.Len(t, expenses.All(ctx), 1)
}

func TestSyncToBudgetPaidWhenSettled(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	final := decimal.NewFromInt(1800)
	created, err := svc.Create(ctx, CreateVendorRequest{
		Name:       "Shutter & Light",
		Category:   "photography",
		FinalPrice: &final,
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, created.ID, domain.StatusPaid)
	require.NoError(t, err)

	expense, err := svc.SyncToBudget(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, final.Equal(expense.Amount))
	assert.True(t, expense.Paid)
}

func TestSyncToBudgetWithoutPrice(t *testing.T) {
	svc, expenses := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateVendorRequest{Name: "Petal & Stem", Category: "florist"})
	require.NoError(t, err)

	_, err = svc.SyncToBudget(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNothingToSync)
	assert.Empty(t, expenses.All(ctx))
}
