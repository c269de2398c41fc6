package budget

import "github.com/shopspring/decimal"

// Category is a budget category with an allocated amount. New budgets
// are seeded with a default category set.
type Category struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated"`
}

// RecordID returns the category identifier
func (c Category) RecordID() string {
	return c.ID
}

// DefaultCategories returns the seed category set for a new budget
func DefaultCategories() []Category {
	names := []struct {
		id   string
		name string
	}{
		{"venue", "Venue"},
		{"catering", "Catering"},
		{"photography", "Photography & Video"},
		{"attire", "Attire & Beauty"},
		{"flowers", "Flowers & Decor"},
		{"music", "Music & Entertainment"},
		{"stationery", "Stationery"},
		{"transportation", "Transportation"},
		{"rings", "Rings"},
		{"other", "Other"},
	}
	categories := make([]Category, len(names))
	for i, n := range names {
		categories[i] = Category{ID: n.id, Name: n.name, Allocated: decimal.Zero}
	}
	return categories
}
