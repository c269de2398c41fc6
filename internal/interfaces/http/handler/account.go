package handler

import (
	"time"

	"github.com/bridallink/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account, session, premium and wedding date
// endpoints
type AccountHandler struct {
	BaseHandler
	service *identity.Service
}

// NewAccountHandler creates an account handler
func NewAccountHandler(service *identity.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterRoutes registers account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/account")
	{
		g.POST("/sign-in", h.SignIn)
		g.POST("/sign-out", h.SignOut)
		g.GET("", h.Active)
		g.PATCH("", h.UpdateProfile)
		g.GET("/premium", h.GetPremium)
		g.POST("/premium", h.ActivatePremium)
		g.GET("/wedding-date", h.GetWeddingDate)
		g.PUT("/wedding-date", h.SetWeddingDate)
	}
}

// SignIn activates a session, creating the account on first use
func (h *AccountHandler) SignIn(c *gin.Context) {
	var req identity.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	account, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// SignOut clears the active session
func (h *AccountHandler) SignOut(c *gin.Context) {
	h.service.SignOut(c.Request.Context())
	h.NoContent(c)
}

// Active returns the account of the active session
func (h *AccountHandler) Active(c *gin.Context) {
	account, err := h.service.ActiveAccount(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// UpdateProfile edits the active account's profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req identity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	account, err := h.service.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// GetPremium returns the subscription state
func (h *AccountHandler) GetPremium(c *gin.Context) {
	h.Success(c, h.service.GetPremium(c.Request.Context()))
}

type activatePremiumRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// ActivatePremium records a completed checkout
func (h *AccountHandler) ActivatePremium(c *gin.Context) {
	var req activatePremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	h.Success(c, h.service.ActivatePremium(c.Request.Context(), req.Plan))
}

// GetWeddingDate returns the couple's wedding date
func (h *AccountHandler) GetWeddingDate(c *gin.Context) {
	wedding, err := h.service.GetWeddingDate(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, wedding)
}

type setWeddingDateRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// SetWeddingDate records the couple's wedding date
func (h *AccountHandler) SetWeddingDate(c *gin.Context) {
	var req setWeddingDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	wedding, err := h.service.SetWeddingDate(c.Request.Context(), req.Date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, wedding)
}
