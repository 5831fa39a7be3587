package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/relaychat/relaychat-server/internal/core"
)

// ProbeHandlers serves the read-only monitoring endpoints.
type ProbeHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewProbeHandlers creates a new probe handlers instance.
func NewProbeHandlers(hub *core.Hub, logger *zerolog.Logger) *ProbeHandlers {
	return &ProbeHandlers{hub: hub, log: logger}
}

// HealthResponse is the health probe body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Rooms     int    `json:"rooms"`
	Users     int    `json:"users"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health reports server liveness with room/user counts.
// GET /health
func (h *ProbeHandlers) Health(c *gin.Context) {
	stats, err := h.hub.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to snapshot hub stats")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "hub unavailable"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Rooms:     stats.Rooms,
		Users:     stats.Users,
	})
}

// Rooms lists all rooms with computed member counts.
// GET /api/rooms
func (h *ProbeHandlers) Rooms(c *gin.Context) {
	rooms, err := h.hub.Rooms(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to snapshot rooms")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "hub unavailable"})
		return
	}
	c.JSON(http.StatusOK, wireRooms(rooms))
}
