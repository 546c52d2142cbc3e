package handler

import (
	"net/http"

	"legalmarket/backend/internal/chathub"
	"legalmarket/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket authenticates the connect handshake and upgrades the
// connection. The token may come from the Authorization header or, for
// browser clients that cannot set headers on websockets, a query parameter.
// Connections that fail validation are refused before any room join is
// possible.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		token = "Bearer " + c.Query("token")
	}
	ident, err := h.Identity.FromBearer(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		Hub:    h.Hub,
		UserID: ident.UserID,
		Conn:   conn,
		Send:   make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
