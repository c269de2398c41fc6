package registry

import (
	"context"
	"testing"

	domain "github.com/bridallink/backend/internal/domain/registry"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	st := store.NewMemoryStore()
	funds := persistence.NewCollection[domain.CashFund](st, domain.CashFundsKey)
	registries := persistence.NewCollection[domain.GiftRegistry](st, domain.GiftRegistriesKey)
	return NewService(funds, registries)
}

func TestCreateFund(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	fund, err := svc.CreateFund(ctx, CreateFundRequest{
		Name: "Honeymoon fund",
		Goal: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.True(t, fund.Collected.IsZero())
	assert.Len(t, svc.ListFunds(ctx), 1)

	_, err = svc.CreateFund(ctx, CreateFundRequest{Goal: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.CreateFund(ctx, CreateFundRequest{Name: "Bad goal", Goal: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestRecordContribution(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	fund, err := svc.CreateFund(ctx, CreateFundRequest{
		Name: "Honeymoon fund",
		Goal: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	updated, err := svc.RecordContribution(ctx, fund.ID, decimal.NewFromInt(150))
	require.NoError(t, err)
	updated, err = svc.RecordContribution(ctx, fund.ID, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(updated.Collected))

	_, err = svc.RecordContribution(ctx, fund.ID, decimal.Zero)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.RecordContribution(ctx, "missing", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteFund(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	fund, err := svc.CreateFund(ctx, CreateFundRequest{
		Name: "House fund",
		Goal: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFund(ctx, fund.ID))
	assert.Empty(t, svc.ListFunds(ctx))
	assert.ErrorIs(t, svc.DeleteFund(ctx, fund.ID), shared.ErrNotFound)
}

func TestStoreRegistries(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	reg, err := svc.CreateRegistry(ctx, CreateRegistryRequest{
		Store: "Crate & Barrel",
		URL:   "https://example.com/registry/123",
	})
	require.NoError(t, err)
	assert.Len(t, svc.ListRegistries(ctx), 1)

	_, err = svc.CreateRegistry(ctx, CreateRegistryRequest{Store: ""})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	require.NoError(t, svc.DeleteRegistry(ctx, reg.ID))
	assert.Empty(t, svc.ListRegistries(ctx))
	assert.ErrorIs(t, svc.DeleteRegistry(ctx, reg.ID), shared.ErrNotFound)
}
