package registry

import "github.com/shopspring/decimal"

// Storage keys for the gift registry module
const (
	CashFundsKey      = "bridallink_cash_funds"
	GiftRegistriesKey = "bridallink_gift_registries"
)

// CashFund is a cash collection goal (honeymoon fund, house fund).
// Contributions themselves are collected by an external payment
// collaborator; only the running total lives here.
type CashFund struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Goal        decimal.Decimal `json:"goal"`
	Collected   decimal.Decimal `json:"collected"`
}

// RecordID returns the cash fund identifier
func (f CashFund) RecordID() string {
	return f.ID
}

// Progress returns the collected fraction of the goal, 0 when no goal
func (f CashFund) Progress() decimal.Decimal {
	if f.Goal.IsZero() {
		return decimal.Zero
	}
	return f.Collected.Div(f.Goal)
}

// GiftRegistry is a link to an external store registry
type GiftRegistry struct {
	ID    string `json:"id"`
	Store string `json:"store"`
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// RecordID returns the registry identifier
func (r GiftRegistry) RecordID() string {
	return r.ID
}
