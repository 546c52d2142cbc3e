package chathub

import "legalmarket/backend/internal/models"

// Client is the interface for one live connection to the gateway. It
// abstracts the transport so the hub can manage connections uniformly.
type Client interface {
	// GetUserID returns the authenticated user behind the connection.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes outbound events
	// into. It is a send-only channel from the hub's point of view.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's outbound channel, stopping its write pump.
	Close()
}

// JoinRequest asks the hub to add a connection to a booking's room.
type JoinRequest struct {
	Client    Client
	BookingID string
}
