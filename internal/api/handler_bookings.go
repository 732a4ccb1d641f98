package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-booking-backend/internal/mw"
)

type bookRequest struct {
	RoomID int64 `json:"roomId" binding:"required"`
}

// Book handles POST /api/book.
func (h *Handler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "roomId required"})
		return
	}

	roomNumber, err := h.engine.Reserve(c.Request.Context(), mw.UserID(c), req.RoomID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "roomNumber": roomNumber})
}

// MyBooking handles GET /api/myBooking. A student without an active
// booking gets an explicit null.
func (h *Handler) MyBooking(c *gin.Context) {
	view, err := h.engine.CurrentBooking(c.Request.Context(), mw.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, gin.H{"booking": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": view})
}

// CancelMyBooking handles DELETE /api/myBooking. A freed bed is announced
// to the notification pool after the transaction commits.
func (h *Handler) CancelMyBooking(c *gin.Context) {
	roomID, err := h.engine.Release(c.Request.Context(), mw.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	if h.pool != nil {
		h.pool.Dispatch(roomID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListBookings handles GET /api/admin/bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	views, err := h.engine.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}
