package chathub

import (
	"encoding/json"
	"log"

	"legalmarket/backend/internal/models"
)

// ListenEvents consumes the redis chat-event channel and feeds the hub's
// dispatch loop. Publishing through redis instead of calling the hub
// directly keeps the API path decoupled and lets several server instances
// converge on the same fan-out. Run it in its own goroutine next to Run.
func (h *Hub) ListenEvents() {
	pubsub := h.Storage.SubscribeEvents()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var evt models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
			log.Printf("Error unmarshalling chat event: %v", err)
			continue
		}
		h.EventCh <- evt
	}
}
