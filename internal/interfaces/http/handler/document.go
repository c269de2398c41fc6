package handler

import (
	"io"
	"net/http"

	"github.com/bridallink/backend/internal/application/document"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DocumentHandler handles document vault endpoints
type DocumentHandler struct {
	BaseHandler
	service *document.Service
}

// NewDocumentHandler creates a document handler
func NewDocumentHandler(service *document.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// RegisterRoutes registers document routes
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/documents")
	{
		g.GET("", h.List)
		g.POST("", h.Upload)
		g.GET("/:id", h.Get)
		g.GET("/:id/file", h.Download)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.POST("/:id/sync-budget", h.SyncToBudget)
	}
}

// List returns all documents
func (h *DocumentHandler) List(c *gin.Context) {
	h.Success(c, h.service.List(c.Request.Context()))
}

// Get returns one document's metadata
func (h *DocumentHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, d)
}

// Upload stores a document from a multipart form. The file goes in the
// "file" field; metadata fields ride alongside it.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file field is required")
		return
	}
	f, err := file.Open()
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	req := document.UploadRequest{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		Vendor:   c.PostForm("vendor"),
		Notes:    c.PostForm("notes"),
		FileName: file.Filename,
		Data:     data,
	}
	if req.Name == "" {
		req.Name = file.Filename
	}
	if raw := c.PostForm("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			h.BadRequest(c, "amount is not a valid number")
			return
		}
		req.Amount = &amount
	}

	d, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, d)
}

// Download streams the stored file
func (h *DocumentHandler) Download(c *gin.Context) {
	data, contentType, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// Update applies a partial metadata update
func (h *DocumentHandler) Update(c *gin.Context) {
	var req document.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	d, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, d)
}

// Delete removes a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SyncToBudget derives a budget expense from the document's amount
func (h *DocumentHandler) SyncToBudget(c *gin.Context) {
	expense, err := h.service.SyncToBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}
