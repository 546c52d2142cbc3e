package models

// Event types pushed to connected websocket clients.
const (
	EventNewMessage = "chat:new_message"
	EventJoined     = "joined"
	EventError      = "error"
)

// Event is the envelope for everything the gateway sends to a client.
type Event struct {
	Type      string       `json:"type"`
	BookingID string       `json:"booking_id,omitempty"`
	Message   *ChatMessage `json:"message,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Command is what a connected client may send over the wire. Joining a
// booking room is the only supported action; messages themselves go through
// the HTTP API so the access policy runs on every post.
type Command struct {
	Action    string `json:"action"`
	BookingID string `json:"booking_id"`
}

const ActionJoin = "join"
