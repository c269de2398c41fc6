// Package vendors provides the vendor directory operations and the
// vendor-to-budget sync trigger.
package vendors

import (
	"context"

	"github.com/bridallink/backend/internal/application/sync"
	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/domain/vendors"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

// Service provides vendor operations
type Service struct {
	vendors *persistence.Collection[vendors.Vendor]
	bridge  *sync.Bridge
}

// NewService creates a vendor service
func NewService(vendors *persistence.Collection[vendors.Vendor], bridge *sync.Bridge) *Service {
	return &Service{vendors: vendors, bridge: bridge}
}

// CreateVendorRequest represents a request to add a vendor
type CreateVendorRequest struct {
	Name        string           `json:"name" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Website     string           `json:"website"`
	QuotedPrice *decimal.Decimal `json:"quotedPrice"`
	FinalPrice  *decimal.Decimal `json:"finalPrice"`
	Notes       string           `json:"notes"`
}

// UpdateVendorRequest represents a partial vendor update
type UpdateVendorRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Status      *string          `json:"status"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"phone"`
	Website     *string          `json:"website"`
	QuotedPrice *decimal.Decimal `json:"quotedPrice"`
	FinalPrice  *decimal.Decimal `json:"finalPrice"`
	Notes       *string          `json:"notes"`
}

// List returns all vendors in insertion order
func (s *Service) List(ctx context.Context) []vendors.Vendor {
	return s.vendors.All(ctx)
}

// ListByCategory returns the vendors in one category
func (s *Service) ListByCategory(ctx context.Context, category string) []vendors.Vendor {
	return shared.FilterBy(s.vendors.All(ctx), func(v vendors.Vendor) bool {
		return v.Category == category
	})
}

// Get returns one vendor by identifier
func (s *Service) Get(ctx context.Context, id string) (vendors.Vendor, error) {
	v, ok := s.vendors.Get(ctx, id)
	if !ok {
		return vendors.Vendor{}, shared.ErrNotFound
	}
	return v, nil
}

// Create adds a vendor at the start of the booking pipeline
func (s *Service) Create(ctx context.Context, req CreateVendorRequest) (vendors.Vendor, error) {
	if req.Name == "" || req.Category == "" {
		return vendors.Vendor{}, shared.ErrInvalidInput
	}
	if (req.QuotedPrice != nil && req.QuotedPrice.IsNegative()) ||
		(req.FinalPrice != nil && req.FinalPrice.IsNegative()) {
		return vendors.Vendor{}, shared.ErrInvalidInput
	}
	v := s.vendors.Create(ctx, func(id string) vendors.Vendor {
		return vendors.Vendor{
			ID:          id,
			Name:        req.Name,
			Category:    req.Category,
			Status:      vendors.StatusResearching,
			Email:       req.Email,
			Phone:       req.Phone,
			Website:     req.Website,
			QuotedPrice: req.QuotedPrice,
			FinalPrice:  req.FinalPrice,
			Notes:       req.Notes,
		}
	})
	return v, nil
}

// Update applies a partial update to a vendor
func (s *Service) Update(ctx context.Context, id string, req UpdateVendorRequest) (vendors.Vendor, error) {
	if req.Status != nil && !vendors.Status(*req.Status).IsValid() {
		return vendors.Vendor{}, shared.ErrInvalidInput
	}
	if (req.QuotedPrice != nil && req.QuotedPrice.IsNegative()) ||
		(req.FinalPrice != nil && req.FinalPrice.IsNegative()) {
		return vendors.Vendor{}, shared.ErrInvalidInput
	}
	v, ok := s.vendors.Update(ctx, id, func(v vendors.Vendor) vendors.Vendor {
		if req.Name != nil {
			v.Name = *req.Name
		}
		if req.Category != nil {
			v.Category = *req.Category
		}
		if req.Status != nil {
			v.Status = vendors.Status(*req.Status)
		}
		if req.Email != nil {
			v.Email = *req.Email
		}
		if req.Phone != nil {
			v.Phone = *req.Phone
		}
		if req.Website != nil {
			v.Website = *req.Website
		}
		if req.QuotedPrice != nil {
			v.QuotedPrice = req.QuotedPrice
		}
		if req.FinalPrice != nil {
			v.FinalPrice = req.FinalPrice
		}
		if req.Notes != nil {
			v.Notes = *req.Notes
		}
		return v
	})
	if !ok {
		return vendors.Vendor{}, shared.ErrNotFound
	}
	return v, nil
}

// SetStatus moves a vendor through the booking pipeline
func (s *Service) SetStatus(ctx context.Context, id string, status vendors.Status) (vendors.Vendor, error) {
	if !status.IsValid() {
		return vendors.Vendor{}, shared.ErrInvalidInput
	}
	v, ok := s.vendors.Update(ctx, id, func(v vendors.Vendor) vendors.Vendor {
		v.Status = status
		return v
	})
	if !ok {
		return vendors.Vendor{}, shared.ErrNotFound
	}
	return v, nil
}

// Delete removes a vendors. The derived expense, if any, stays in the
// budget until it is deleted there.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.vendors.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}

// SyncToBudget derives a budget expense from the vendor's price
func (s *Service) SyncToBudget(ctx context.Context, id string) (budget.Expense, error) {
	v, ok := s.vendors.Get(ctx, id)
	if !ok {
		return budget.Expense{}, shared.ErrNotFound
	}
	return s.bridge.SyncVendor(ctx, v)
}
