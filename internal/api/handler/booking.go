package handler

import (
	"net/http"

	"legalmarket/backend/internal/apperr"
	"legalmarket/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateBooking opens a Pending booking for the authenticated citizen.
func (h *Handler) CreateBooking(c *gin.Context) {
	ident := identityFrom(c)

	var req struct {
		ServiceID   string `json:"service_id" binding:"required"`
		BookingDate string `json:"booking_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "service_id is required"})
		return
	}

	b, err := h.Bookings.CreateBooking(ident.UserID, req.ServiceID, req.BookingDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created", "booking": b})
}

// ListMyBookings is caller-scoped: citizens see their own bookings,
// providers the ones assigned to them.
func (h *Handler) ListMyBookings(c *gin.Context) {
	ident := identityFrom(c)

	bookings, err := h.Bookings.ListUserBookings(ident.UserID, ident.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus applies a lifecycle transition requested by the provider.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	ident := identityFrom(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		respondError(c, apperr.New(apperr.InvalidArgument, "invalid status supplied"))
		return
	}

	b, err := h.Bookings.ChangeStatus(c.Param("id"), ident.UserID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated to " + string(b.Status), "booking": b})
}
