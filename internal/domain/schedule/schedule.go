package schedule

import "time"

// Key is the fixed storage key for the schedule event collection
const Key = "bridallink_schedule_events"

// Event is a single entry on the wedding-day timeline
type Event struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Location  string     `json:"location,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// RecordID returns the event identifier
func (e Event) RecordID() string {
	return e.ID
}
