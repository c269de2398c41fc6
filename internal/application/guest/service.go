// Package guest provides the guest list operations: CRUD, RSVP
// tracking, CSV import with per-row error reporting and CSV export.
package guest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/bridallink/backend/internal/domain/guest"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/csvx"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
)

// Service provides guest list operations
type Service struct {
	guests *persistence.Collection[guest.Guest]
}

// NewService creates a guest service
func NewService(guests *persistence.Collection[guest.Guest]) *Service {
	return &Service{guests: guests}
}

// CreateGuestRequest represents a request to add a guest
type CreateGuestRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Category       string `json:"category"`
	Side           string `json:"side"`
	PlusOne        bool   `json:"plusOne"`
	InvitationSent bool   `json:"invitationSent"`
}

// UpdateGuestRequest represents a partial guest update
type UpdateGuestRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Category       *string `json:"category"`
	Side           *string `json:"side"`
	PlusOne        *bool   `json:"plusOne"`
	InvitationSent *bool   `json:"invitationSent"`
}

// ImportResult reports the outcome of a CSV import. Valid rows are
// committed even when other rows fail; Errors lists what was skipped.
type ImportResult struct {
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Errors   []csvx.RowError `json:"errors,omitempty"`
}

// Stats summarizes the guest list for the dashboard
type Stats struct {
	Total      int `json:"total"`
	Accepted   int `json:"accepted"`
	Declined   int `json:"declined"`
	Pending    int `json:"pending"`
	PlusOnes   int `json:"plusOnes"`
	Unassigned int `json:"unassigned"`
}

// List returns all guests in insertion order
func (s *Service) List(ctx context.Context) []guest.Guest {
	return s.guests.All(ctx)
}

// Get returns one guest by identifier
func (s *Service) Get(ctx context.Context, id string) (guest.Guest, error) {
	g, ok := s.guests.Get(ctx, id)
	if !ok {
		return guest.Guest{}, shared.ErrNotFound
	}
	return g, nil
}

// Create adds a guest with a fresh identifier. New guests start with a
// pending RSVP.
func (s *Service) Create(ctx context.Context, req CreateGuestRequest) (guest.Guest, error) {
	if req.FirstName == "" {
		return guest.Guest{}, shared.ErrInvalidInput
	}
	g := s.guests.Create(ctx, func(id string) guest.Guest {
		return guest.Guest{
			ID:             id,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			Category:       guest.NormalizeCategory(req.Category),
			Side:           guest.Side(req.Side),
			RSVPStatus:     guest.RSVPPending,
			PlusOne:        req.PlusOne,
			InvitationSent: req.InvitationSent,
		}
	})
	return g, nil
}

// Update applies a partial update to a guest
func (s *Service) Update(ctx context.Context, id string, req UpdateGuestRequest) (guest.Guest, error) {
	g, ok := s.guests.Update(ctx, id, func(g guest.Guest) guest.Guest {
		if req.FirstName != nil {
			g.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			g.LastName = *req.LastName
		}
		if req.Email != nil {
			g.Email = *req.Email
		}
		if req.Phone != nil {
			g.Phone = *req.Phone
		}
		if req.Category != nil {
			g.Category = guest.NormalizeCategory(*req.Category)
		}
		if req.Side != nil {
			g.Side = guest.Side(*req.Side)
		}
		if req.PlusOne != nil {
			g.PlusOne = *req.PlusOne
		}
		if req.InvitationSent != nil {
			g.InvitationSent = *req.InvitationSent
		}
		return g
	})
	if !ok {
		return guest.Guest{}, shared.ErrNotFound
	}
	return g, nil
}

// SetRSVP records a guest's reply
func (s *Service) SetRSVP(ctx context.Context, id string, status guest.RSVPStatus) (guest.Guest, error) {
	if !status.IsValid() {
		return guest.Guest{}, shared.ErrInvalidInput
	}
	g, ok := s.guests.Update(ctx, id, func(g guest.Guest) guest.Guest {
		g.RSVPStatus = status
		return g
	})
	if !ok {
		return guest.Guest{}, shared.ErrNotFound
	}
	return g, nil
}

// Delete removes a guest from the list
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.guests.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}

// GetStats summarizes RSVP and seating progress
func (s *Service) GetStats(ctx context.Context) Stats {
	guests := s.guests.All(ctx)
	return Stats{
		Total: len(guests),
		Accepted: shared.CountBy(guests, func(g guest.Guest) bool {
			return g.RSVPStatus == guest.RSVPAccepted
		}),
		Declined: shared.CountBy(guests, func(g guest.Guest) bool {
			return g.RSVPStatus == guest.RSVPDeclined
		}),
		Pending: shared.CountBy(guests, func(g guest.Guest) bool {
			return g.RSVPStatus == guest.RSVPPending
		}),
		PlusOnes: shared.CountBy(guests, func(g guest.Guest) bool { return g.PlusOne }),
		Unassigned: shared.CountBy(guests, func(g guest.Guest) bool {
			return g.TableAssignment == ""
		}),
	}
}

// ImportCSV parses a guest CSV and adds one guest per valid row. Rows
// missing a first name are skipped with a row error; valid rows commit
// regardless of failures elsewhere in the file.
func (s *Service) ImportCSV(ctx context.Context, data []byte) (ImportResult, error) {
	parser, err := csvx.ParseBytes(data)
	if err != nil {
		return ImportResult{}, err
	}

	rows, rowErrors := parser.ReadAll()
	result := ImportResult{Errors: rowErrors}
	for _, row := range rows {
		firstName := row.Get("first name", "firstname", "first", "name")
		if firstName == "" {
			result.Errors = append(result.Errors,
				csvx.NewRowError(row.Number, "first name", "row has no first name"))
			continue
		}
		s.guests.Create(ctx, func(id string) guest.Guest {
			return guest.Guest{
				ID:         id,
				FirstName:  firstName,
				LastName:   row.Get("last name", "lastname", "last", "surname"),
				Email:      row.Get("email", "e-mail", "mail"),
				Phone:      row.Get("phone", "phone number", "mobile"),
				Category:   guest.NormalizeCategory(row.Get("category", "group")),
				Side:       guest.Side(row.Get("side")),
				RSVPStatus: guest.RSVPPending,
			}
		})
		result.Imported++
	}
	result.Skipped = len(result.Errors)
	return result, nil
}

// ExportCSV renders the guest list as a CSV file
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"First Name", "Last Name", "Email", "Phone", "Category", "Side", "RSVP Status", "Plus One", "Table"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, g := range s.guests.All(ctx) {
		record := []string{
			g.FirstName,
			g.LastName,
			g.Email,
			g.Phone,
			string(g.Category),
			string(g.Side),
			string(g.RSVPStatus),
			fmt.Sprintf("%t", g.PlusOne),
			g.TableAssignment,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
