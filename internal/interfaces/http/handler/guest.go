package handler

import (
	"io"
	"net/http"

	"github.com/bridallink/backend/internal/application/guest"
	guestdomain "github.com/bridallink/backend/internal/domain/guest"
	"github.com/gin-gonic/gin"
)

// GuestHandler handles guest list endpoints
type GuestHandler struct {
	BaseHandler
	service *guest.Service
}

// NewGuestHandler creates a guest handler
func NewGuestHandler(service *guest.Service) *GuestHandler {
	return &GuestHandler{service: service}
}

// RegisterRoutes registers guest routes
func (h *GuestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/guests")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/stats", h.Stats)
		g.POST("/import", h.Import)
		g.GET("/export", h.Export)
		g.GET("/:id", h.Get)
		g.PATCH("/:id", h.Update)
		g.PUT("/:id/rsvp", h.SetRSVP)
		g.DELETE("/:id", h.Delete)
	}
}

// List returns all guests
func (h *GuestHandler) List(c *gin.Context) {
	h.Success(c, h.service.List(c.Request.Context()))
}

// Get returns one guest
func (h *GuestHandler) Get(c *gin.Context) {
	g, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// Create adds a guest
func (h *GuestHandler) Create(c *gin.Context) {
	var req guest.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, g)
}

// Update applies a partial guest update
func (h *GuestHandler) Update(c *gin.Context) {
	var req guest.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	g, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

type setRSVPRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetRSVP records a guest's reply
func (h *GuestHandler) SetRSVP(c *gin.Context) {
	var req setRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	g, err := h.service.SetRSVP(c.Request.Context(), c.Param("id"), guestdomain.RSVPStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// Delete removes a guest
func (h *GuestHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Stats returns the guest list summary
func (h *GuestHandler) Stats(c *gin.Context) {
	h.Success(c, h.service.GetStats(c.Request.Context()))
}

// Import parses an uploaded CSV file and adds its guests
func (h *GuestHandler) Import(c *gin.Context) {
	data, err := readUpload(c, "file")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.ImportCSV(c.Request.Context(), data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Export streams the guest list as a CSV file
func (h *GuestHandler) Export(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="guests.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// readUpload reads a multipart file field, falling back to the raw
// request body when the request is not multipart
func readUpload(c *gin.Context, field string) ([]byte, error) {
	if file, err := c.FormFile(field); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}
