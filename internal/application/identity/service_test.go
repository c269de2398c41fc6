package identity

import (
	"context"
	"testing"
	"time"

	domain "github.com/bridallink/backend/internal/domain/identity"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	st := store.NewMemoryStore()
	accounts := persistence.NewCollection[domain.Account](st, domain.AccountsKey)
	session := persistence.NewValue(st, domain.ActiveSessionKey,
		func() *domain.Session { return nil }, nil)
	premium := persistence.NewValue(st, domain.PremiumKey,
		func() domain.Premium { return domain.Premium{} }, nil)
	wedding := persistence.NewValue(st, domain.WeddingDateKey,
		func() *domain.WeddingDate { return nil }, nil)
	return NewService(accounts, session, premium, wedding)
}

func TestSignInCreatesAccountOnFirstUse(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	account, err := svc.SignIn(ctx, SignInRequest{Email: "Couple@Example.com", Name: "Jamie"})
	require.NoError(t, err)
	assert.Equal(t, "couple@example.com", account.Email)

	active, err := svc.ActiveAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, account.ID, active.ID)

	// signing in again reuses the account
	again, err := svc.SignIn(ctx, SignInRequest{Email: "couple@example.com"})
	require.NoError(t, err)
	assert.Equal(t, account.ID, again.ID)
}

func TestSignInRejectsInvalidEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.SignIn(context.Background(), SignInRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestSignOutClearsSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SignIn(ctx, SignInRequest{Email: "couple@example.com"})
	require.NoError(t, err)

	svc.SignOut(ctx)

	_, err = svc.ActiveAccount(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SignIn(ctx, SignInRequest{Email: "couple@example.com", Name: "Jamie"})
	require.NoError(t, err)

	partner := "Alex"
	account, err := svc.UpdateProfile(ctx, UpdateProfileRequest{PartnerName: &partner})
	require.NoError(t, err)
	assert.Equal(t, "Jamie", account.Name)
	assert.Equal(t, "Alex", account.PartnerName)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileRequest{})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPremiumActivation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.False(t, svc.GetPremium(ctx).Active)

	premium := svc.ActivatePremium(ctx, "annual")
	assert.True(t, premium.Active)
	assert.Equal(t, "annual", premium.Plan)
	assert.True(t, svc.GetPremium(ctx).Active)
}

func TestWeddingDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.GetWeddingDate(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	date := time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC)
	wedding, err := svc.SetWeddingDate(ctx, date)
	require.NoError(t, err)
	assert.True(t, wedding.Date.Equal(date))

	stored, err := svc.GetWeddingDate(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Date.Equal(date))

	_, err = svc.SetWeddingDate(ctx, time.Time{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
