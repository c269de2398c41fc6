package task

import (
	"time"

	"github.com/shopspring/decimal"
)

// Key is the fixed storage key for the task collection
const Key = "bridallink_tasks"

// Status represents a task's progress state
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority ranks tasks for display ordering
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is a valid Priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a wedding-planning to-do item. A task with a cost can be
// synced into the budget as a derived expense.
type Task struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Priority    Priority         `json:"priority"`
	Status      Status           `json:"status"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Vendor      string           `json:"vendor,omitempty"`
}

// RecordID returns the task identifier
func (t Task) RecordID() string {
	return t.ID
}

// SyncAmount returns the amount to sync into the budget, or false when
// the task carries no cost
func (t Task) SyncAmount() (decimal.Decimal, bool) {
	if t.Cost == nil {
		return decimal.Zero, false
	}
	return *t.Cost, true
}
