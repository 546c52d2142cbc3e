package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetConversation returns the booking and its full message log, provided
// the caller is a participant and the chat has unlocked.
func (h *Handler) GetConversation(c *gin.Context) {
	ident := identityFrom(c)

	conv, err := h.Bookings.GetConversation(c.Param("bookingId"), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// PostMessage appends a message to an unlocked conversation. The realtime
// fan-out happens inside the booking service after the message persists.
func (h *Handler) PostMessage(c *gin.Context) {
	ident := identityFrom(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "message content is required"})
		return
	}

	msg, err := h.Bookings.PostMessage(c.Param("bookingId"), ident.UserID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
