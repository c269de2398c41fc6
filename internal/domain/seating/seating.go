package seating

// Storage keys for the seating planner
const (
	ReceptionTablesKey = "bridallink_reception_tables"
	CeremonySeatingKey = "bridallink_ceremony_seating"
)

// Table is a reception table with its assigned guests. A guest sits at
// most at one table; the seating service maintains that invariant.
type Table struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	GuestIDs []string `json:"guestIds"`
}

// RecordID returns the table identifier
func (t Table) RecordID() string {
	return t.ID
}

// HasGuest reports whether the guest is assigned to this table
func (t Table) HasGuest(guestID string) bool {
	for _, id := range t.GuestIDs {
		if id == guestID {
			return true
		}
	}
	return false
}

// SeatsLeft returns the remaining capacity of the table
func (t Table) SeatsLeft() int {
	return t.Capacity - len(t.GuestIDs)
}

// Seat is a single ceremony seat, optionally occupied by a guest
type Seat struct {
	ID      string `json:"id"`
	Row     int    `json:"row"`
	Number  int    `json:"number"`
	Section string `json:"section,omitempty"`
	GuestID string `json:"guestId,omitempty"`
}

// RecordID returns the seat identifier
func (s Seat) RecordID() string {
	return s.ID
}
