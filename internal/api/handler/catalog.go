package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddService publishes a new listing for the authenticated provider.
func (h *Handler) AddService(c *gin.Context) {
	ident := identityFrom(c)

	var req struct {
		Title       string  `json:"title" binding:"required"`
		Category    string  `json:"category" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and category are required"})
		return
	}

	svc, err := h.Catalog.AddService(ident.UserID, ident.Role, req.Title, req.Category, req.Description, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Service added successfully", "service": svc})
}

// ListServices returns the catalog, scoped to the viewer's role.
func (h *Handler) ListServices(c *gin.Context) {
	ident := identityFrom(c)

	services, err := h.Catalog.ListServices(ident.UserID, ident.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService returns a single listing.
func (h *Handler) GetService(c *gin.Context) {
	ident := identityFrom(c)

	svc, err := h.Catalog.GetService(c.Param("id"), ident.UserID, ident.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
