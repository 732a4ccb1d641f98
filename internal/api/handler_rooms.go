package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// roomResponse represents the API shape for a single room.
type roomResponse struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Capacity   int    `json:"capacity"`
	Available  int    `json:"available"`
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.engine.ListRooms(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomResponse{
			ID:         r.ID,
			RoomNumber: r.RoomNumber,
			Capacity:   r.Capacity,
			Available:  r.Available,
		})
	}
	c.JSON(http.StatusOK, gin.H{"rooms": out})
}

type addRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Available  *int   `json:"available" binding:"required,min=0"`
}

// AddRoom handles POST /api/admin/rooms.
func (h *Handler) AddRoom(c *gin.Context) {
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}
	if *req.Available > req.Capacity {
		c.JSON(http.StatusBadRequest, gin.H{"message": "available cannot exceed capacity"})
		return
	}

	if err := h.engine.AddRoom(c.Request.Context(), req.RoomNumber, req.Capacity, *req.Available); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
