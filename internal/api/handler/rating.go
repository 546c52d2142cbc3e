package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddRating records the citizen's score for a finished booking.
func (h *Handler) AddRating(c *gin.Context) {
	ident := identityFrom(c)

	var req struct {
		BookingID string `json:"booking_id" binding:"required"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "booking_id is required"})
		return
	}

	rating, err := h.Bookings.SubmitRating(req.BookingID, ident.UserID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rating added", "rating": rating})
}

// GetProviderRatings lists a provider's ratings with their average score.
func (h *Handler) GetProviderRatings(c *gin.Context) {
	ratings, avg, err := h.Bookings.ProviderRatings(c.Param("providerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings, "average_rating": avg})
}

// GetLeaderboard serves the provider points ranking.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.Leaderboard.Top(10)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
