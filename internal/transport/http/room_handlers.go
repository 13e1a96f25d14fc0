package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/roomhub-server/internal/core"
)

// RoomHandlers provides HTTP handlers for room information endpoints.
type RoomHandlers struct {
	reg *core.Registry
	log *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(reg *core.Registry, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{reg: reg, log: logger}
}

// ListRoomsResponse is the body of the rooms listing.
type ListRoomsResponse struct {
	Rooms []string `json:"rooms"`
}

// RoomResponse describes one room.
type RoomResponse struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// ErrorResponse is the generic API error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, ListRoomsResponse{Rooms: h.reg.ListRoomNames()})
}

// GetRoom handles GET /api/rooms/:name.
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	name := c.Param("name")
	room, ok := h.reg.Find(name)
	if !ok {
		c.JSON(stdhttp.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}
	c.JSON(stdhttp.StatusOK, RoomResponse{
		Name:    room.Name(),
		Members: room.Members(),
	})
}
