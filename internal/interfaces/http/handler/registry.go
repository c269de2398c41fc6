package handler

import (
	"github.com/bridallink/backend/internal/application/registry"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegistryHandler handles gift registry endpoints
type RegistryHandler struct {
	BaseHandler
	service *registry.Service
}

// NewRegistryHandler creates a registry handler
func NewRegistryHandler(service *registry.Service) *RegistryHandler {
	return &RegistryHandler{service: service}
}

// RegisterRoutes registers registry routes
func (h *RegistryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	funds := rg.Group("/registry/funds")
	{
		funds.GET("", h.ListFunds)
		funds.POST("", h.CreateFund)
		funds.POST("/:id/contributions", h.RecordContribution)
		funds.DELETE("/:id", h.DeleteFund)
	}
	stores := rg.Group("/registry/stores")
	{
		stores.GET("", h.ListRegistries)
		stores.POST("", h.CreateRegistry)
		stores.DELETE("/:id", h.DeleteRegistry)
	}
}

// ListFunds returns all cash funds
func (h *RegistryHandler) ListFunds(c *gin.Context) {
	h.Success(c, h.service.ListFunds(c.Request.Context()))
}

// CreateFund adds a cash fund
func (h *RegistryHandler) CreateFund(c *gin.Context) {
	var req registry.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	fund, err := h.service.CreateFund(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, fund)
}

type contributionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RecordContribution adds a reported contribution to a fund
func (h *RegistryHandler) RecordContribution(c *gin.Context) {
	var req contributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	fund, err := h.service.RecordContribution(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, fund)
}

// DeleteFund removes a cash fund
func (h *RegistryHandler) DeleteFund(c *gin.Context) {
	if err := h.service.DeleteFund(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListRegistries returns all linked store registries
func (h *RegistryHandler) ListRegistries(c *gin.Context) {
	h.Success(c, h.service.ListRegistries(c.Request.Context()))
}

// CreateRegistry links an external store registry
func (h *RegistryHandler) CreateRegistry(c *gin.Context) {
	var req registry.CreateRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	r, err := h.service.CreateRegistry(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, r)
}

// DeleteRegistry removes a linked store registry
func (h *RegistryHandler) DeleteRegistry(c *gin.Context) {
	if err := h.service.DeleteRegistry(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
