// Package task provides the task checklist operations and the
// task-to-budget sync trigger.
package task

import (
	"context"
	"time"

	"github.com/bridallink/backend/internal/application/sync"
	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/domain/task"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

// Service provides task operations
type Service struct {
	tasks  *persistence.Collection[task.Task]
	bridge *sync.Bridge
}

// NewService creates a task service
func NewService(tasks *persistence.Collection[task.Task], bridge *sync.Bridge) *Service {
	return &Service{tasks: tasks, bridge: bridge}
}

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Priority    string           `json:"priority"`
	DueDate     *time.Time       `json:"dueDate"`
	Cost        *decimal.Decimal `json:"cost"`
	Vendor      string           `json:"vendor"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Priority    *string          `json:"priority"`
	Status      *string          `json:"status"`
	DueDate     *time.Time       `json:"dueDate"`
	Cost        *decimal.Decimal `json:"cost"`
	Vendor      *string          `json:"vendor"`
}

// List returns all tasks in insertion order
func (s *Service) List(ctx context.Context) []task.Task {
	return s.tasks.All(ctx)
}

// Get returns one task by identifier
func (s *Service) Get(ctx context.Context, id string) (task.Task, error) {
	t, ok := s.tasks.Get(ctx, id)
	if !ok {
		return task.Task{}, shared.ErrNotFound
	}
	return t, nil
}

// Create adds a task. New tasks start pending, with medium priority
// unless one is given.
func (s *Service) Create(ctx context.Context, req CreateTaskRequest) (task.Task, error) {
	if req.Title == "" {
		return task.Task{}, shared.ErrInvalidInput
	}
	priority := task.PriorityMedium
	if req.Priority != "" {
		priority = task.Priority(req.Priority)
		if !priority.IsValid() {
			return task.Task{}, shared.ErrInvalidInput
		}
	}
	if req.Cost != nil && req.Cost.IsNegative() {
		return task.Task{}, shared.ErrInvalidInput
	}
	t := s.tasks.Create(ctx, func(id string) task.Task {
		return task.Task{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Priority:    priority,
			Status:      task.StatusPending,
			DueDate:     req.DueDate,
			Cost:        req.Cost,
			Vendor:      req.Vendor,
		}
	})
	return t, nil
}

// Update applies a partial update to a task
func (s *Service) Update(ctx context.Context, id string, req UpdateTaskRequest) (task.Task, error) {
	if req.Priority != nil && !task.Priority(*req.Priority).IsValid() {
		return task.Task{}, shared.ErrInvalidInput
	}
	if req.Status != nil && !task.Status(*req.Status).IsValid() {
		return task.Task{}, shared.ErrInvalidInput
	}
	if req.Cost != nil && req.Cost.IsNegative() {
		return task.Task{}, shared.ErrInvalidInput
	}
	t, ok := s.tasks.Update(ctx, id, func(t task.Task) task.Task {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Category != nil {
			t.Category = *req.Category
		}
		if req.Priority != nil {
			t.Priority = task.Priority(*req.Priority)
		}
		if req.Status != nil {
			t.Status = task.Status(*req.Status)
		}
		if req.DueDate != nil {
			t.DueDate = req.DueDate
		}
		if req.Cost != nil {
			t.Cost = req.Cost
		}
		if req.Vendor != nil {
			t.Vendor = *req.Vendor
		}
		return t
	})
	if !ok {
		return task.Task{}, shared.ErrNotFound
	}
	return t, nil
}

// SetStatus moves a task through the checklist
func (s *Service) SetStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	if !status.IsValid() {
		return task.Task{}, shared.ErrInvalidInput
	}
	t, ok := s.tasks.Update(ctx, id, func(t task.Task) task.Task {
		t.Status = status
		return t
	})
	if !ok {
		return task.Task{}, shared.ErrNotFound
	}
	return t, nil
}

// Delete removes a task. The derived expense, if any, stays in the
// budget until it is deleted there.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.tasks.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}

// SyncToBudget derives a budget expense from the task's cost
func (s *Service) SyncToBudget(ctx context.Context, id string) (budget.Expense, error) {
	t, ok := s.tasks.Get(ctx, id)
	if !ok {
		return budget.Expense{}, shared.ErrNotFound
	}
	return s.bridge.SyncTask(ctx, t)
}
