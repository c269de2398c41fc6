package budget

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Storage keys owned by the budget module. No other module may persist
// under these keys; the sync bridge writes expenses only through the
// expense collection.
const (
	ExpensesKey   = "bridallink_budget_expenses"
	CategoriesKey = "bridallink_budget_categories"
	TotalsKey     = "bridallink_budget_totals"
)

// SyncSource identifies the module a derived expense was synced from
type SyncSource string

const (
	SyncSourceTask     SyncSource = "task"
	SyncSourceVendor   SyncSource = "vendor"
	SyncSourceDocument SyncSource = "document"
)

// IsValid checks if the source is a valid SyncSource
func (s SyncSource) IsValid() bool {
	switch s {
	case SyncSourceTask, SyncSourceVendor, SyncSourceDocument:
		return true
	}
	return false
}

// String returns the string representation of SyncSource
func (s SyncSource) String() string {
	return string(s)
}

// DisplayName returns the human-readable name of the source module,
// used in the provenance note of a synced expense
func (s SyncSource) DisplayName() string {
	switch s {
	case SyncSourceTask:
		return "Task Manager"
	case SyncSourceVendor:
		return "Vendor Manager"
	case SyncSourceDocument:
		return "Document Manager"
	default:
		return string(s)
	}
}

// Expense is a single budget expense. Expenses are owned by the budget
// module but may also be written by the sync bridge on behalf of a
// task, vendor or document record, in which case SyncSource and SyncID
// record the provenance.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Vendor      string          `json:"vendor,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Paid        bool            `json:"paid"`
	SyncSource  SyncSource      `json:"syncSource,omitempty"`
	SyncID      string          `json:"syncId,omitempty"`
}

// RecordID returns the expense identifier
func (e Expense) RecordID() string {
	return e.ID
}

// IsSynced reports whether the expense was derived by the sync bridge
func (e Expense) IsSynced() bool {
	return e.SyncSource != ""
}

// DerivedID computes the deterministic identifier reserved for an
// expense synced from the given source record
func DerivedID(source SyncSource, sourceID string) string {
	return string(source) + "-" + sourceID
}

// IsReservedID reports whether the identifier matches the
// `<source>-<id>` pattern reserved for synced expenses. Owning modules
// must never create an expense with such an identifier themselves.
func IsReservedID(id string) bool {
	for _, s := range []SyncSource{SyncSourceTask, SyncSourceVendor, SyncSourceDocument} {
		if strings.HasPrefix(id, string(s)+"-") {
			return true
		}
	}
	return false
}

// Totals holds the overall wedding budget figure
type Totals struct {
	TotalBudget decimal.Decimal `json:"totalBudget"`
}
