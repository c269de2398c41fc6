package identity

import "time"

// Storage keys for accounts and session state. Accounts are deliberately
// unauthenticated: an account is keyed by email alone, with no secret.
const (
	AccountsKey      = "bridallink_accounts"
	ActiveSessionKey = "bridallink_active_session"
	PremiumKey       = "bridallink_premium"
	WeddingDateKey   = "bridallink_wedding_date"
)

// Account is an email-keyed planner profile
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	PartnerName string    `json:"partnerName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecordID returns the account identifier
func (a Account) RecordID() string {
	return a.ID
}

// Session marks which account is currently active
type Session struct {
	Email     string    `json:"email"`
	StartedAt time.Time `json:"startedAt"`
}

// Premium records the subscription state. Checkout itself is handled by
// an external payment collaborator; only the resulting flag lives here.
type Premium struct {
	Active      bool      `json:"active"`
	Plan        string    `json:"plan,omitempty"`
	ActivatedAt time.Time `json:"activatedAt,omitempty"`
}

// WeddingDate holds the couple's wedding date
type WeddingDate struct {
	Date time.Time `json:"date"`
}
