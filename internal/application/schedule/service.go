// Package schedule provides the wedding-day timeline operations.
package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/bridallink/backend/internal/domain/schedule"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
)

// Service provides schedule operations
type Service struct {
	events *persistence.Collection[schedule.Event]
}

// NewService creates a schedule service
func NewService(events *persistence.Collection[schedule.Event]) *Service {
	return &Service{events: events}
}

// CreateEventRequest represents a request to add a timeline event
type CreateEventRequest struct {
	Title     string     `json:"title" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime"`
	Location  string     `json:"location"`
	Notes     string     `json:"notes"`
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	Title     *string    `json:"title"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Location  *string    `json:"location"`
	Notes     *string    `json:"notes"`
}

// List returns all events ordered by start time
func (s *Service) List(ctx context.Context) []schedule.Event {
	events := s.events.All(ctx)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events
}

// Get returns one event by identifier
func (s *Service) Get(ctx context.Context, id string) (schedule.Event, error) {
	e, ok := s.events.Get(ctx, id)
	if !ok {
		return schedule.Event{}, shared.ErrNotFound
	}
	return e, nil
}

// Create adds a timeline event
func (s *Service) Create(ctx context.Context, req CreateEventRequest) (schedule.Event, error) {
	if req.Title == "" || req.StartTime.IsZero() {
		return schedule.Event{}, shared.ErrInvalidInput
	}
	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		return schedule.Event{}, shared.ErrInvalidInput
	}
	e := s.events.Create(ctx, func(id string) schedule.Event {
		return schedule.Event{
			ID:        id,
			Title:     req.Title,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Location:  req.Location,
			Notes:     req.Notes,
		}
	})
	return e, nil
}

// Update applies a partial update to an event
func (s *Service) Update(ctx context.Context, id string, req UpdateEventRequest) (schedule.Event, error) {
	current, ok := s.events.Get(ctx, id)
	if !ok {
		return schedule.Event{}, shared.ErrNotFound
	}
	start := current.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := current.EndTime
	if req.EndTime != nil {
		end = req.EndTime
	}
	if end != nil && end.Before(start) {
		return schedule.Event{}, shared.ErrInvalidInput
	}

	e, ok := s.events.Update(ctx, id, func(e schedule.Event) schedule.Event {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.StartTime != nil {
			e.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			e.EndTime = req.EndTime
		}
		if req.Location != nil {
			e.Location = *req.Location
		}
		if req.Notes != nil {
			e.Notes = *req.Notes
		}
		return e
	})
	if !ok {
		return schedule.Event{}, shared.ErrNotFound
	}
	return e, nil
}

// Delete removes an event from the timeline
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.events.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}
