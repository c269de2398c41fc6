package guest

import "strings"

// Key is the fixed storage key for the guest collection
const Key = "bridallink_guests"

// RSVPStatus represents a guest's reply state
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

// IsValid checks if the status is a valid RSVPStatus
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined:
		return true
	}
	return false
}

// Category groups guests for list filtering and seating
type Category string

const (
	CategoryFamily     Category = "family"
	CategoryFriends    Category = "friends"
	CategoryColleagues Category = "colleagues"
	CategoryOther      Category = "other"
)

// IsValid checks if the category is one of the recognized values
func (c Category) IsValid() bool {
	switch c {
	case CategoryFamily, CategoryFriends, CategoryColleagues, CategoryOther:
		return true
	}
	return false
}

// NormalizeCategory maps free-form input (e.g. a CSV cell) onto a
// recognized category, defaulting to friends
func NormalizeCategory(value string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	if c.IsValid() {
		return c
	}
	return CategoryFriends
}

// Side is the side of the couple a guest belongs to
type Side string

const (
	SideBride   Side = "bride"
	SideGroom   Side = "groom"
	SideMutual  Side = "mutual"
	SideUnknown Side = ""
)

// Guest is a single guest-list entry
type Guest struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Category        Category   `json:"category"`
	Side            Side       `json:"side,omitempty"`
	RSVPStatus      RSVPStatus `json:"rsvpStatus"`
	PlusOne         bool       `json:"plusOne,omitempty"`
	InvitationSent  bool       `json:"invitationSent,omitempty"`
	TableAssignment string     `json:"tableAssignment,omitempty"`
}

// RecordID returns the guest identifier
func (g Guest) RecordID() string {
	return g.ID
}

// FullName returns the guest's display name
func (g Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}
