package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles system endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
}

// NewSystemHandler creates a system handler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startTime: time.Now()}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/system")
	{
		g.GET("/info", h.GetSystemInfo)
		g.GET("/ping", h.Ping)
		g.GET("/health", h.Health)
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and
// uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "BridalLink API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks if the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Health reports service liveness for probes
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status: "healthy",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	})
}
