// Package identity provides account and session operations. Accounts
// are email-keyed planner profiles without credentials; signing in
// creates the account on first use.
package identity

import (
	"context"
	"strings"
	"time"

	"github.com/bridallink/backend/internal/domain/identity"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
)

// Service provides account, session, premium and wedding date operations
type Service struct {
	accounts *persistence.Collection[identity.Account]
	session  *persistence.Value[*identity.Session]
	premium  *persistence.Value[identity.Premium]
	wedding  *persistence.Value[*identity.WeddingDate]
}

// NewService creates an identity service
func NewService(
	accounts *persistence.Collection[identity.Account],
	session *persistence.Value[*identity.Session],
	premium *persistence.Value[identity.Premium],
	wedding *persistence.Value[*identity.WeddingDate],
) *Service {
	return &Service{
		accounts: accounts,
		session:  session,
		premium:  premium,
		wedding:  wedding,
	}
}

// SignInRequest represents a sign-in; the account is created when the
// email is new
type SignInRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name"`
	PartnerName string `json:"partnerName"`
}

// SignIn activates the session for the account with the given email,
// creating the account first when none exists
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (identity.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return identity.Account{}, shared.ErrInvalidInput
	}

	account, ok := s.findByEmail(ctx, email)
	if !ok {
		account = s.accounts.Create(ctx, func(id string) identity.Account {
			return identity.Account{
				ID:          id,
				Email:       email,
				Name:        req.Name,
				PartnerName: req.PartnerName,
				CreatedAt:   time.Now(),
			}
		})
	}

	s.session.Set(ctx, &identity.Session{Email: email, StartedAt: time.Now()})
	return account, nil
}

// SignOut clears the active session
func (s *Service) SignOut(ctx context.Context) {
	s.session.Clear(ctx)
}

// ActiveAccount returns the account of the active session
func (s *Service) ActiveAccount(ctx context.Context) (identity.Account, error) {
	session := s.session.Get(ctx)
	if session == nil {
		return identity.Account{}, shared.ErrNotFound
	}
	account, ok := s.findByEmail(ctx, session.Email)
	if !ok {
		return identity.Account{}, shared.ErrNotFound
	}
	return account, nil
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	PartnerName *string `json:"partnerName"`
}

// UpdateProfile edits the active account's profile
func (s *Service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (identity.Account, error) {
	account, err := s.ActiveAccount(ctx)
	if err != nil {
		return identity.Account{}, err
	}
	updated, ok := s.accounts.Update(ctx, account.ID, func(a identity.Account) identity.Account {
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.PartnerName != nil {
			a.PartnerName = *req.PartnerName
		}
		return a
	})
	if !ok {
		return identity.Account{}, shared.ErrNotFound
	}
	return updated, nil
}

// GetPremium returns the subscription state
func (s *Service) GetPremium(ctx context.Context) identity.Premium {
	return s.premium.Get(ctx)
}

// ActivatePremium records a completed checkout reported by the payment
// collaborator
func (s *Service) ActivatePremium(ctx context.Context, plan string) identity.Premium {
	premium := identity.Premium{Active: true, Plan: plan, ActivatedAt: time.Now()}
	s.premium.Set(ctx, premium)
	return premium
}

// GetWeddingDate returns the couple's wedding date, if set
func (s *Service) GetWeddingDate(ctx context.Context) (identity.WeddingDate, error) {
	wedding := s.wedding.Get(ctx)
	if wedding == nil {
		return identity.WeddingDate{}, shared.ErrNotFound
	}
	return *wedding, nil
}

// SetWeddingDate records the couple's wedding date
func (s *Service) SetWeddingDate(ctx context.Context, date time.Time) (identity.WeddingDate, error) {
	if date.IsZero() {
		return identity.WeddingDate{}, shared.ErrInvalidInput
	}
	wedding := identity.WeddingDate{Date: date}
	s.wedding.Set(ctx, &wedding)
	return wedding, nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (identity.Account, bool) {
	for _, a := range s.accounts.All(ctx) {
		if a.Email == email {
			return a, true
		}
	}
	return identity.Account{}, false
}
