package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueToken exchanges a known user id and role for a signed token. This is
// the stand-in for the external identity service's "verify credentials →
// issue token" operation; credential verification itself stays outside this
// system.
func (h *Handler) IssueToken(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Role   string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_id and role are required"})
		return
	}

	token, err := h.Identity.IssueToken(req.UserID, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": req.UserID})
}
