package handler

import (
	"github.com/bridallink/backend/internal/application/task"
	taskdomain "github.com/bridallink/backend/internal/domain/task"
	"github.com/gin-gonic/gin"
)

// TaskHandler handles task checklist endpoints
type TaskHandler struct {
	BaseHandler
	service *task.Service
}

// NewTaskHandler creates a task handler
func NewTaskHandler(service *task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// RegisterRoutes registers task routes
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/tasks")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:id", h.Get)
		g.PATCH("/:id", h.Update)
		g.PUT("/:id/status", h.SetStatus)
		g.DELETE("/:id", h.Delete)
		g.POST("/:id/sync-budget", h.SyncToBudget)
	}
}

// List returns all tasks
func (h *TaskHandler) List(c *gin.Context) {
	h.Success(c, h.service.List(c.Request.Context()))
}

// Get returns one task
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, t)
}

// Create adds a task
func (h *TaskHandler) Create(c *gin.Context) {
	var req task.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, t)
}

// Update applies a partial task update
func (h *TaskHandler) Update(c *gin.Context) {
	var req task.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	t, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, t)
}

type setTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus moves a task through the checklist
func (h *TaskHandler) SetStatus(c *gin.Context) {
	var req setTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	t, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), taskdomain.Status(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, t)
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SyncToBudget derives a budget expense from the task's cost
func (h *TaskHandler) SyncToBudget(c *gin.Context) {
	expense, err := h.service.SyncToBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}
