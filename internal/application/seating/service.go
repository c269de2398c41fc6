// Package seating provides the reception table and ceremony seating
// operations. Assigning a guest removes them from any other table
// first, so a guest is never seated twice.
package seating

import (
	"context"

	"github.com/bridallink/backend/internal/domain/guest"
	"github.com/bridallink/backend/internal/domain/seating"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
)

// Service provides seating operations. It also writes the guest's
// table assignment back to the guest collection so the guest list can
// show where everyone sits.
type Service struct {
	tables *persistence.Collection[seating.Table]
	seats  *persistence.Collection[seating.Seat]
	guests *persistence.Collection[guest.Guest]
}

// NewService creates a seating service
func NewService(
	tables *persistence.Collection[seating.Table],
	seats *persistence.Collection[seating.Seat],
	guests *persistence.Collection[guest.Guest],
) *Service {
	return &Service{tables: tables, seats: seats, guests: guests}
}

// CreateTableRequest represents a request to add a reception table
type CreateTableRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

// ListTables returns all reception tables
func (s *Service) ListTables(ctx context.Context) []seating.Table {
	return s.tables.All(ctx)
}

// GetTable returns one table by identifier
func (s *Service) GetTable(ctx context.Context, id string) (seating.Table, error) {
	t, ok := s.tables.Get(ctx, id)
	if !ok {
		return seating.Table{}, shared.ErrNotFound
	}
	return t, nil
}

// CreateTable adds an empty reception table
func (s *Service) CreateTable(ctx context.Context, req CreateTableRequest) (seating.Table, error) {
	if req.Name == "" || req.Capacity <= 0 {
		return seating.Table{}, shared.ErrInvalidInput
	}
	t := s.tables.Create(ctx, func(id string) seating.Table {
		return seating.Table{ID: id, Name: req.Name, Capacity: req.Capacity, GuestIDs: []string{}}
	})
	return t, nil
}

// RenameTable changes a table's display name
func (s *Service) RenameTable(ctx context.Context, id, name string) (seating.Table, error) {
	if name == "" {
		return seating.Table{}, shared.ErrInvalidInput
	}
	t, ok := s.tables.Update(ctx, id, func(t seating.Table) seating.Table {
		t.Name = name
		return t
	})
	if !ok {
		return seating.Table{}, shared.ErrNotFound
	}
	return t, nil
}

// DeleteTable removes a table and clears the assignment of everyone
// seated at it
func (s *Service) DeleteTable(ctx context.Context, id string) error {
	t, ok := s.tables.Get(ctx, id)
	if !ok {
		return shared.ErrNotFound
	}
	for _, guestID := range t.GuestIDs {
		s.guests.Update(ctx, guestID, func(g guest.Guest) guest.Guest {
			g.TableAssignment = ""
			return g
		})
	}
	s.tables.Delete(ctx, id)
	return nil
}

// AssignGuest seats a guest at a table, moving them off any table they
// were already seated at
func (s *Service) AssignGuest(ctx context.Context, tableID, guestID string) (seating.Table, error) {
	g, ok := s.guests.Get(ctx, guestID)
	if !ok {
		return seating.Table{}, shared.ErrNotFound
	}
	target, ok := s.tables.Get(ctx, tableID)
	if !ok {
		return seating.Table{}, shared.ErrNotFound
	}
	if target.HasGuest(guestID) {
		return target, nil
	}
	if target.SeatsLeft() <= 0 {
		return seating.Table{}, shared.ErrInvalidState
	}

	if g.TableAssignment != "" && g.TableAssignment != tableID {
		s.removeFromTable(ctx, g.TableAssignment, guestID)
	}

	t, ok := s.tables.Update(ctx, tableID, func(t seating.Table) seating.Table {
		if !t.HasGuest(guestID) {
			t.GuestIDs = append(t.GuestIDs, guestID)
		}
		return t
	})
	if !ok {
		return seating.Table{}, shared.ErrNotFound
	}
	s.guests.Update(ctx, guestID, func(g guest.Guest) guest.Guest {
		g.TableAssignment = tableID
		return g
	})
	return t, nil
}

// UnassignGuest removes a guest from their table
func (s *Service) UnassignGuest(ctx context.Context, guestID string) error {
	g, ok := s.guests.Get(ctx, guestID)
	if !ok {
		return shared.ErrNotFound
	}
	if g.TableAssignment == "" {
		return nil
	}
	s.removeFromTable(ctx, g.TableAssignment, guestID)
	s.guests.Update(ctx, guestID, func(g guest.Guest) guest.Guest {
		g.TableAssignment = ""
		return g
	})
	return nil
}

func (s *Service) removeFromTable(ctx context.Context, tableID, guestID string) {
	s.tables.Update(ctx, tableID, func(t seating.Table) seating.Table {
		for i, id := range t.GuestIDs {
			if id == guestID {
				t.GuestIDs = append(t.GuestIDs[:i], t.GuestIDs[i+1:]...)
				break
			}
		}
		return t
	})
}

// ListSeats returns the ceremony seating chart
func (s *Service) ListSeats(ctx context.Context) []seating.Seat {
	return s.seats.All(ctx)
}

// SetupCeremonyRows replaces the ceremony chart with rows * seatsPerRow
// empty seats split into two sections
func (s *Service) SetupCeremonyRows(ctx context.Context, rows, seatsPerRow int) ([]seating.Seat, error) {
	if rows <= 0 || seatsPerRow <= 0 {
		return nil, shared.ErrInvalidInput
	}
	ids := shared.UUIDProvider{}
	seats := make([]seating.Seat, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for n := 1; n <= seatsPerRow; n++ {
			section := "left"
			if n > seatsPerRow/2 {
				section = "right"
			}
			seats = append(seats, seating.Seat{
				ID:      ids.NewID(),
				Row:     row,
				Number:  n,
				Section: section,
			})
		}
	}
	s.seats.ReplaceAll(ctx, seats)
	return seats, nil
}

// OccupySeat places a guest on a ceremony seat, vacating any seat they
// already occupy
func (s *Service) OccupySeat(ctx context.Context, seatID, guestID string) (seating.Seat, error) {
	if _, ok := s.guests.Get(ctx, guestID); !ok {
		return seating.Seat{}, shared.ErrNotFound
	}
	target, ok := s.seats.Get(ctx, seatID)
	if !ok {
		return seating.Seat{}, shared.ErrNotFound
	}
	if target.GuestID != "" && target.GuestID != guestID {
		return seating.Seat{}, shared.ErrInvalidState
	}

	for _, seat := range s.seats.All(ctx) {
		if seat.GuestID == guestID && seat.ID != seatID {
			s.seats.Update(ctx, seat.ID, func(st seating.Seat) seating.Seat {
				st.GuestID = ""
				return st
			})
		}
	}

	seat, ok := s.seats.Update(ctx, seatID, func(st seating.Seat) seating.Seat {
		st.GuestID = guestID
		return st
	})
	if !ok {
		return seating.Seat{}, shared.ErrNotFound
	}
	return seat, nil
}

// VacateSeat clears a ceremony seat
func (s *Service) VacateSeat(ctx context.Context, seatID string) error {
	_, ok := s.seats.Update(ctx, seatID, func(st seating.Seat) seating.Seat {
		st.GuestID = ""
		return st
	})
	if !ok {
		return shared.ErrNotFound
	}
	return nil
}
