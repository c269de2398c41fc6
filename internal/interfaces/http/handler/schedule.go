package handler

import (
	"github.com/bridallink/backend/internal/application/schedule"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles wedding-day timeline endpoints
type ScheduleHandler struct {
	BaseHandler
	service *schedule.Service
}

// NewScheduleHandler creates a schedule handler
func NewScheduleHandler(service *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// RegisterRoutes registers schedule routes
func (h *ScheduleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/schedule")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:id", h.Get)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

// List returns the timeline ordered by start time
func (h *ScheduleHandler) List(c *gin.Context) {
	h.Success(c, h.service.List(c.Request.Context()))
}

// Get returns one event
func (h *ScheduleHandler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, e)
}

// Create adds a timeline event
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req schedule.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, e)
}

// Update applies a partial event update
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req schedule.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	e, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, e)
}

// Delete removes an event
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
