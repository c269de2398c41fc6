package handler

import (
	"net/http"

	"github.com/bridallink/backend/internal/application/playlist"
	"github.com/gin-gonic/gin"
)

// PlaylistHandler handles music playlist endpoints
type PlaylistHandler struct {
	BaseHandler
	service *playlist.Service
}

// NewPlaylistHandler creates a playlist handler
func NewPlaylistHandler(service *playlist.Service) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// RegisterRoutes registers playlist routes
func (h *PlaylistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/playlists")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:id", h.Get)
		g.DELETE("/:id", h.Delete)
		g.POST("/:id/songs", h.AddSong)
		g.DELETE("/:id/songs/:songId", h.RemoveSong)
		g.POST("/:id/import", h.Import)
		g.GET("/:id/export", h.Export)
	}
}

// List returns all playlists
func (h *PlaylistHandler) List(c *gin.Context) {
	h.Success(c, h.service.List(c.Request.Context()))
}

// Get returns one playlist
func (h *PlaylistHandler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Create adds a playlist
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req playlist.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// Delete removes a playlist
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddSong appends a song to a playlist
func (h *PlaylistHandler) AddSong(c *gin.Context) {
	var req playlist.AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	p, err := h.service.AddSong(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// RemoveSong deletes a song from a playlist
func (h *PlaylistHandler) RemoveSong(c *gin.Context) {
	p, err := h.service.RemoveSong(c.Request.Context(), c.Param("id"), c.Param("songId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// Import parses an uploaded CSV file and appends its songs
func (h *PlaylistHandler) Import(c *gin.Context) {
	data, err := readUpload(c, "file")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.ImportCSV(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Export streams a playlist's songs as a CSV file
func (h *PlaylistHandler) Export(c *gin.Context) {
	data, err := h.service.ExportCSV(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="playlist.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
