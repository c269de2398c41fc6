// Package registry provides the gift registry operations: cash funds
// with contribution tracking and links to external store registries.
package registry

import (
	"context"

	"github.com/bridallink/backend/internal/domain/registry"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

// Service provides gift registry operations
type Service struct {
	funds      *persistence.Collection[registry.CashFund]
	registries *persistence.Collection[registry.GiftRegistry]
}

// NewService creates a registry service
func NewService(
	funds *persistence.Collection[registry.CashFund],
	registries *persistence.Collection[registry.GiftRegistry],
) *Service {
	return &Service{funds: funds, registries: registries}
}

// CreateFundRequest represents a request to create a cash fund
type CreateFundRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Goal        decimal.Decimal `json:"goal" binding:"required"`
}

// CreateRegistryRequest represents a request to link a store registry
type CreateRegistryRequest struct {
	Store string `json:"store" binding:"required"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
}

// ListFunds returns all cash funds
func (s *Service) ListFunds(ctx context.Context) []registry.CashFund {
	return s.funds.All(ctx)
}

// CreateFund adds a cash fund with nothing collected yet
func (s *Service) CreateFund(ctx context.Context, req CreateFundRequest) (registry.CashFund, error) {
	if req.Name == "" || req.Goal.IsNegative() {
		return registry.CashFund{}, shared.ErrInvalidInput
	}
	fund := s.funds.Create(ctx, func(id string) registry.CashFund {
		return registry.CashFund{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Goal:        req.Goal,
			Collected:   decimal.Zero,
		}
	})
	return fund, nil
}

// RecordContribution adds an amount reported by the payment
// collaborator to a fund's running total
func (s *Service) RecordContribution(ctx context.Context, id string, amount decimal.Decimal) (registry.CashFund, error) {
	if !amount.IsPositive() {
		return registry.CashFund{}, shared.ErrInvalidInput
	}
	fund, ok := s.funds.Update(ctx, id, func(f registry.CashFund) registry.CashFund {
		f.Collected = f.Collected.Add(amount)
		return f
	})
	if !ok {
		return registry.CashFund{}, shared.ErrNotFound
	}
	return fund, nil
}

// DeleteFund removes a cash fund
func (s *Service) DeleteFund(ctx context.Context, id string) error {
	if !s.funds.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}

// ListRegistries returns all linked store registries
func (s *Service) ListRegistries(ctx context.Context) []registry.GiftRegistry {
	return s.registries.All(ctx)
}

// CreateRegistry links an external store registry
func (s *Service) CreateRegistry(ctx context.Context, req CreateRegistryRequest) (registry.GiftRegistry, error) {
	if req.Store == "" {
		return registry.GiftRegistry{}, shared.ErrInvalidInput
	}
	r := s.registries.Create(ctx, func(id string) registry.GiftRegistry {
		return registry.GiftRegistry{ID: id, Store: req.Store, URL: req.URL, Notes: req.Notes}
	})
	return r, nil
}

// DeleteRegistry removes a linked store registry
func (s *Service) DeleteRegistry(ctx context.Context, id string) error {
	if !s.registries.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}
