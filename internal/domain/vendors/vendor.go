package vendors

import "github.com/shopspring/decimal"

// Key is the fixed storage key for the vendor collection
const Key = "bridallink_vendors"

// Status tracks a vendor through the booking pipeline
type Status string

const (
	StatusResearching Status = "researching"
	StatusContacted   Status = "contacted"
	StatusQuoted      Status = "quoted"
	StatusBooked      Status = "booked"
	StatusPaid        Status = "paid"
	StatusCompleted   Status = "completed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusResearching, StatusContacted, StatusQuoted,
		StatusBooked, StatusPaid, StatusCompleted:
		return true
	}
	return false
}

// IsSettled reports whether the vendor has been paid
func (s Status) IsSettled() bool {
	return s == StatusPaid || s == StatusCompleted
}

// Vendor is a wedding service provider. A vendor with a quoted or
// final price can be synced into the budget as a derived expense.
type Vendor struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Status      Status           `json:"status"`
	Email       string           `json:"email,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Website     string           `json:"website,omitempty"`
	QuotedPrice *decimal.Decimal `json:"quotedPrice,omitempty"`
	FinalPrice  *decimal.Decimal `json:"finalPrice,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// RecordID returns the vendor identifier
func (v Vendor) RecordID() string {
	return v.ID
}

// SyncAmount returns the amount to sync into the budget, preferring the
// quoted price over the final price, or false when neither is set
func (v Vendor) SyncAmount() (decimal.Decimal, bool) {
	if v.QuotedPrice != nil {
		return *v.QuotedPrice, true
	}
	if v.FinalPrice != nil {
		return *v.FinalPrice, true
	}
	return decimal.Zero, false
}
