// Package budget provides the application-level budget operations:
// expense and category management, the overall budget figure and the
// per-category spending summary.
package budget

import (
	"context"
	"time"

	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

// Service provides budget operations over the expense and category
// collections and the totals value
type Service struct {
	expenses   *persistence.Collection[budget.Expense]
	categories *persistence.Collection[budget.Category]
	totals     *persistence.Value[budget.Totals]
}

// NewService creates a budget service
func NewService(
	expenses *persistence.Collection[budget.Expense],
	categories *persistence.Collection[budget.Category],
	totals *persistence.Value[budget.Totals],
) *Service {
	return &Service{
		expenses:   expenses,
		categories: categories,
		totals:     totals,
	}
}

// CreateExpenseRequest represents a request to create an expense
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        *time.Time      `json:"date"`
	Vendor      string          `json:"vendor"`
	Notes       string          `json:"notes"`
	Paid        bool            `json:"paid"`
}

// UpdateExpenseRequest represents a request to update an expense.
// Pointer fields distinguish "leave unchanged" from an explicit value.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	Vendor      *string          `json:"vendor"`
	Notes       *string          `json:"notes"`
	Paid        *bool            `json:"paid"`
}

// CategorySummary is one row of the per-category spending report
type CategorySummary struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Allocated  decimal.Decimal `json:"allocated"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// Summary is the full budget report
type Summary struct {
	TotalBudget decimal.Decimal   `json:"totalBudget"`
	TotalSpent  decimal.Decimal   `json:"totalSpent"`
	TotalPaid   decimal.Decimal   `json:"totalPaid"`
	Remaining   decimal.Decimal   `json:"remaining"`
	Categories  []CategorySummary `json:"categories"`
}

// ListExpenses returns all expenses in insertion order
func (s *Service) ListExpenses(ctx context.Context) []budget.Expense {
	return s.expenses.All(ctx)
}

// GetExpense returns one expense by identifier
func (s *Service) GetExpense(ctx context.Context, id string) (budget.Expense, error) {
	expense, ok := s.expenses.Get(ctx, id)
	if !ok {
		return budget.Expense{}, shared.ErrNotFound
	}
	return expense, nil
}

// CreateExpense adds a manual expense. Identifiers matching the pattern
// reserved for synced expenses are generated only by the sync bridge,
// never here.
func (s *Service) CreateExpense(ctx context.Context, req CreateExpenseRequest) (budget.Expense, error) {
	if req.Amount.IsNegative() {
		return budget.Expense{}, shared.ErrInvalidInput
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	expense := s.expenses.Create(ctx, func(id string) budget.Expense {
		return budget.Expense{
			ID:          id,
			Category:    req.Category,
			Description: req.Description,
			Amount:      req.Amount,
			Date:        date,
			Vendor:      req.Vendor,
			Notes:       req.Notes,
			Paid:        req.Paid,
		}
	})
	return expense, nil
}

// ImportExpense inserts an expense with a caller-supplied identifier,
// rejecting identifiers reserved for synced expenses
func (s *Service) ImportExpense(ctx context.Context, expense budget.Expense) error {
	if budget.IsReservedID(expense.ID) {
		return shared.ErrReservedID
	}
	return s.expenses.Insert(ctx, expense)
}

// UpdateExpense applies a partial update to an expense. Updating a
// synced expense is allowed but the next sync of its source record
// overwrites the edit.
func (s *Service) UpdateExpense(ctx context.Context, id string, req UpdateExpenseRequest) (budget.Expense, error) {
	if req.Amount != nil && req.Amount.IsNegative() {
		return budget.Expense{}, shared.ErrInvalidInput
	}
	expense, ok := s.expenses.Update(ctx, id, func(e budget.Expense) budget.Expense {
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Amount != nil {
			e.Amount = *req.Amount
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.Vendor != nil {
			e.Vendor = *req.Vendor
		}
		if req.Notes != nil {
			e.Notes = *req.Notes
		}
		if req.Paid != nil {
			e.Paid = *req.Paid
		}
		return e
	})
	if !ok {
		return budget.Expense{}, shared.ErrNotFound
	}
	return expense, nil
}

// DeleteExpense removes an expense. Deleting a synced expense detaches
// it from the budget until the source record is synced again.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if !s.expenses.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}

// ListCategories returns all budget categories
func (s *Service) ListCategories(ctx context.Context) []budget.Category {
	return s.categories.All(ctx)
}

// SetCategoryAllocation updates the amount allocated to a category
func (s *Service) SetCategoryAllocation(ctx context.Context, id string, allocated decimal.Decimal) (budget.Category, error) {
	if allocated.IsNegative() {
		return budget.Category{}, shared.ErrInvalidInput
	}
	category, ok := s.categories.Update(ctx, id, func(c budget.Category) budget.Category {
		c.Allocated = allocated
		return c
	})
	if !ok {
		return budget.Category{}, shared.ErrNotFound
	}
	return category, nil
}

// CreateCategory adds a custom budget category
func (s *Service) CreateCategory(ctx context.Context, name string, allocated decimal.Decimal) (budget.Category, error) {
	if name == "" || allocated.IsNegative() {
		return budget.Category{}, shared.ErrInvalidInput
	}
	category := s.categories.Create(ctx, func(id string) budget.Category {
		return budget.Category{ID: id, Name: name, Allocated: allocated}
	})
	return category, nil
}

// GetTotals returns the overall budget figure
func (s *Service) GetTotals(ctx context.Context) budget.Totals {
	return s.totals.Get(ctx)
}

// SetTotalBudget replaces the overall budget figure
func (s *Service) SetTotalBudget(ctx context.Context, total decimal.Decimal) (budget.Totals, error) {
	if total.IsNegative() {
		return budget.Totals{}, shared.ErrInvalidInput
	}
	totals := budget.Totals{TotalBudget: total}
	s.totals.Set(ctx, totals)
	return totals, nil
}

// GetSummary aggregates spending per category against allocations
func (s *Service) GetSummary(ctx context.Context) Summary {
	expenses := s.expenses.All(ctx)
	categories := s.categories.All(ctx)
	totals := s.totals.Get(ctx)

	spentByCategory := shared.GroupSum(expenses,
		func(e budget.Expense) string { return e.Category },
		func(e budget.Expense) decimal.Decimal { return e.Amount })

	totalSpent := shared.SumBy(expenses,
		func(e budget.Expense) decimal.Decimal { return e.Amount })
	totalPaid := shared.SumBy(
		shared.FilterBy(expenses, func(e budget.Expense) bool { return e.Paid }),
		func(e budget.Expense) decimal.Decimal { return e.Amount })

	rows := make([]CategorySummary, len(categories))
	for i, c := range categories {
		spent := spentByCategory[c.ID]
		rows[i] = CategorySummary{
			CategoryID: c.ID,
			Name:       c.Name,
			Allocated:  c.Allocated,
			Spent:      spent,
			Remaining:  c.Allocated.Sub(spent),
		}
	}

	return Summary{
		TotalBudget: totals.TotalBudget,
		TotalSpent:  totalSpent,
		TotalPaid:   totalPaid,
		Remaining:   totals.TotalBudget.Sub(totalSpent),
		Categories:  rows,
	}
}
