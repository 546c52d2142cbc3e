// Package chathub is the realtime gateway: it tracks live connections,
// groups them into per-booking rooms and fans persisted chat events out to
// every connection joined to the room. Delivery is best-effort; anything a
// connection misses is backfilled over the HTTP conversation endpoint.
package chathub

import (
	"log"

	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/policy"
	"legalmarket/backend/internal/storage"
)

// Hub owns the connection registry and the room index. Both maps are
// touched only from the Run goroutine; everything else talks to the hub
// through its channels.
type Hub struct {
	// clients is the registry of live connections.
	clients map[Client]bool
	// rooms maps a booking id to the set of connections joined to it.
	rooms map[string]map[Client]bool

	RegisterCh   chan Client
	UnregisterCh chan Client
	JoinCh       chan JoinRequest
	EventCh      chan models.Event

	Storage storage.Storage
}

func NewHub(s storage.Storage) *Hub {
	return &Hub{
		clients:      make(map[Client]bool),
		rooms:        make(map[string]map[Client]bool),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		JoinCh:       make(chan JoinRequest, 16),
		EventCh:      make(chan models.Event, 256),
		Storage:      s,
	}
}

// Run is the hub's single dispatch loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.RegisterCh:
			h.clients[client] = true

		case client := <-h.UnregisterCh:
			h.dropClient(client)

		case req := <-h.JoinCh:
			h.handleJoin(req)

		case evt := <-h.EventCh:
			h.broadcast(evt)
		}
	}
}

// handleJoin adds the connection to the booking's room after checking that
// the user actually belongs to the booking. Joining is only fan-out
// eligibility; read access is still enforced on the HTTP path.
func (h *Hub) handleJoin(req JoinRequest) {
	// The request may have been queued before the client was dropped. Its
	// send channel is closed by then, so a stale join is ignored outright
	// instead of sending into a closed channel.
	if !h.clients[req.Client] {
		return
	}
	if req.BookingID == "" {
		h.trySend(req.Client, models.Event{Type: models.EventError, Error: "booking id is required"})
		return
	}
	b, err := h.Storage.GetBookingByID(req.BookingID)
	if err != nil {
		h.trySend(req.Client, models.Event{Type: models.EventError, BookingID: req.BookingID, Error: "booking not found"})
		return
	}
	if !policy.IsParticipant(b, req.Client.GetUserID()) {
		h.trySend(req.Client, models.Event{Type: models.EventError, BookingID: req.BookingID, Error: "access denied for this conversation"})
		return
	}

	room, ok := h.rooms[req.BookingID]
	if !ok {
		room = make(map[Client]bool)
		h.rooms[req.BookingID] = room
	}
	room[req.Client] = true
	h.trySend(req.Client, models.Event{Type: models.EventJoined, BookingID: req.BookingID})
}

// broadcast fans an event out to every connection joined to its room,
// including the sender's own connection so all participants converge on the
// stored order.
func (h *Hub) broadcast(evt models.Event) {
	room, ok := h.rooms[evt.BookingID]
	if !ok {
		return
	}
	for client := range room {
		select {
		case client.GetSendChannel() <- evt:
		default:
			// The client's send buffer is full; drop the connection rather
			// than block the hub loop.
			log.Printf("dropping slow client %s", client.GetUserID())
			h.dropClient(client)
		}
	}
}

// dropClient removes a connection from the registry and from every room.
func (h *Hub) dropClient(client Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for bookingID, room := range h.rooms {
		if room[client] {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, bookingID)
			}
		}
	}
	client.Close()
}

// trySend delivers an event without ever blocking the hub loop.
func (h *Hub) trySend(client Client, evt models.Event) {
	select {
	case client.GetSendChannel() <- evt:
	default:
	}
}
