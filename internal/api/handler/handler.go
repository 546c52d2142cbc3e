package handler

import (
	"errors"
	"log"
	"net/http"

	"legalmarket/backend/internal/apperr"
	"legalmarket/backend/internal/booking"
	"legalmarket/backend/internal/catalog"
	"legalmarket/backend/internal/chathub"
	"legalmarket/backend/internal/identity"
	"legalmarket/backend/internal/leaderboard"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP surface to the domain services.
type Handler struct {
	Bookings    *booking.Service
	Catalog     *catalog.Service
	Leaderboard *leaderboard.Service
	Identity    *identity.Service
	Hub         *chathub.Hub
}

func NewHandler(bookings *booking.Service, cat *catalog.Service, lb *leaderboard.Service, ident *identity.Service, hub *chathub.Hub) *Handler {
	return &Handler{
		Bookings:    bookings,
		Catalog:     cat,
		Leaderboard: lb,
		Identity:    ident,
		Hub:         hub,
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "legalmarket-api"})
	})

	r.POST("/api/users/token", h.IssueToken)

	auth := r.Group("/api", h.AuthRequired())
	{
		auth.POST("/services", h.AddService)
		auth.GET("/services", h.ListServices)
		auth.GET("/services/:id", h.GetService)

		auth.POST("/bookings/create", h.CreateBooking)
		auth.GET("/bookings/my-bookings", h.ListMyBookings)
		auth.PUT("/bookings/:id/status", h.UpdateBookingStatus)

		auth.GET("/chat/:bookingId", h.GetConversation)
		auth.POST("/chat/:bookingId", h.PostMessage)

		auth.POST("/ratings/add", h.AddRating)
	}

	r.GET("/api/ratings/provider/:providerId", h.GetProviderRatings)
	r.GET("/api/leaderboard", h.GetLeaderboard)

	r.GET("/ws", h.ServeWebSocket)
}

const identityKey = "identity"

// AuthRequired resolves the bearer token and stores the identity in the
// request context.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := h.Identity.FromBearer(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

func identityFrom(c *gin.Context) *identity.Identity {
	v, _ := c.Get(identityKey)
	ident, _ := v.(*identity.Identity)
	return ident
}

// respondError maps a typed error to its status code; anything untagged is a
// plain 500 with the detail kept server-side.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Kind.HTTPStatus(), gin.H{"message": ae.Message, "code": ae.Kind.Code()})
		return
	}
	log.Printf("ERROR: unhandled error on %s: %v", c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
}
