package handler

import (
	"github.com/bridallink/backend/internal/application/seating"
	"github.com/gin-gonic/gin"
)

// SeatingHandler handles reception table and ceremony seating endpoints
type SeatingHandler struct {
	BaseHandler
	service *seating.Service
}

// NewSeatingHandler creates a seating handler
func NewSeatingHandler(service *seating.Service) *SeatingHandler {
	return &SeatingHandler{service: service}
}

// RegisterRoutes registers seating routes
func (h *SeatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tables := rg.Group("/seating/tables")
	{
		tables.GET("", h.ListTables)
		tables.POST("", h.CreateTable)
		tables.GET("/:id", h.GetTable)
		tables.PUT("/:id/name", h.RenameTable)
		tables.DELETE("/:id", h.DeleteTable)
		tables.POST("/:id/guests", h.AssignGuest)
	}
	ceremony := rg.Group("/seating/ceremony")
	{
		ceremony.GET("", h.ListSeats)
		ceremony.PUT("", h.SetupRows)
		ceremony.PUT("/:id/guest", h.OccupySeat)
		ceremony.DELETE("/:id/guest", h.VacateSeat)
	}
	rg.DELETE("/seating/guests/:guestId", h.UnassignGuest)
}

// ListTables returns all reception tables
func (h *SeatingHandler) ListTables(c *gin.Context) {
	h.Success(c, h.service.ListTables(c.Request.Context()))
}

// GetTable returns one table
func (h *SeatingHandler) GetTable(c *gin.Context) {
	t, err := h.service.GetTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, t)
}

// CreateTable adds a reception table
func (h *SeatingHandler) CreateTable(c *gin.Context) {
	var req seating.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	t, err := h.service.CreateTable(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, t)
}

type renameTableRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameTable changes a table's display name
func (h *SeatingHandler) RenameTable(c *gin.Context) {
	var req renameTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	t, err := h.service.RenameTable(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, t)
}

// DeleteTable removes a table
func (h *SeatingHandler) DeleteTable(c *gin.Context) {
	if err := h.service.DeleteTable(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

type assignGuestRequest struct {
	GuestID string `json:"guestId" binding:"required"`
}

// AssignGuest seats a guest at a table
func (h *SeatingHandler) AssignGuest(c *gin.Context) {
	var req assignGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	t, err := h.service.AssignGuest(c.Request.Context(), c.Param("id"), req.GuestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, t)
}

// UnassignGuest removes a guest from their table
func (h *SeatingHandler) UnassignGuest(c *gin.Context) {
	if err := h.service.UnassignGuest(c.Request.Context(), c.Param("guestId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSeats returns the ceremony seating chart
func (h *SeatingHandler) ListSeats(c *gin.Context) {
	h.Success(c, h.service.ListSeats(c.Request.Context()))
}

type setupRowsRequest struct {
	Rows        int `json:"rows" binding:"required"`
	SeatsPerRow int `json:"seatsPerRow" binding:"required"`
}

// SetupRows replaces the ceremony chart with a fresh grid
func (h *SeatingHandler) SetupRows(c *gin.Context) {
	var req setupRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	seats, err := h.service.SetupCeremonyRows(c.Request.Context(), req.Rows, req.SeatsPerRow)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, seats)
}

// OccupySeat places a guest on a ceremony seat
func (h *SeatingHandler) OccupySeat(c *gin.Context) {
	var req assignGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	seat, err := h.service.OccupySeat(c.Request.Context(), c.Param("id"), req.GuestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, seat)
}

// VacateSeat clears a ceremony seat
func (h *SeatingHandler) VacateSeat(c *gin.Context) {
	if err := h.service.VacateSeat(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
