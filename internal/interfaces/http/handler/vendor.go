package handler

import (
	"github.com/bridallink/backend/internal/application/vendors"
	vendordomain "github.com/bridallink/backend/internal/domain/vendors"
	"github.com/gin-gonic/gin"
)

// VendorHandler handles vendor directory endpoints
type VendorHandler struct {
	BaseHandler
	service *vendors.Service
}

// NewVendorHandler creates a vendor handler
func NewVendorHandler(service *vendors.Service) *VendorHandler {
	return &VendorHandler{service: service}
}

// RegisterRoutes registers vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/vendors")
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

// List returns all vendors, optionally filtered by category
func (h *VendorHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		h.Success(c, h.service.ListByCategory(c.Request.Context(), category))
		return
	}
	h.Success(c, h.service.List(c.Request.Context()))
}

// Get returns one vendor
func (h *VendorHandler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, v)
}

// Create adds a vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req vendors.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, v)
}

// Update applies a partial vendor update
func (h *VendorHandler) Update(c *gin.Context) {
	var req vendors.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	v, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, v)
}

type setVendorStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus moves a vendor through the booking pipeline
func (h *VendorHandler) SetStatus(c *gin.Context) {
	var req setVendorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	v, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), vendordomain.Status(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, v)
}

// Delete removes a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SyncToBudget derives a budget expense from the vendor's price
func (h *VendorHandler) SyncToBudget(c *gin.Context) {
	expense, err := h.service.SyncToBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}
