package chathub_test

import (
	"sync/atomic"

	"legalmarket/backend/internal/models"
)

// MockClient is a test double for the chathub.Client interface. Its send
// channel is buffered so hub fan-out never blocks in tests, and Close
// mirrors the websocket client by closing the channel.
type MockClient struct {
	userID string
	send   chan models.Event
	closed atomic.Bool
}

func newMockClient(userID string) *MockClient {
	return &MockClient{
		userID: userID,
		send:   make(chan models.Event, 10),
	}
}

// newSlowMockClient has no send buffer, so any fan-out attempt makes the
// hub treat it as a slow consumer and drop it.
func newSlowMockClient(userID string) *MockClient {
	return &MockClient{
		userID: userID,
		send:   make(chan models.Event),
	}
}

func (c *MockClient) GetUserID() string                   { return c.userID }
func (c *MockClient) GetSendChannel() chan<- models.Event { return c.send }
func (c *MockClient) Run()                                {}

func (c *MockClient) Close() {
	c.closed.Store(true)
	close(c.send)
}

// Closed reports whether the hub closed this client. Safe to call from the
// test goroutine while the hub goroutine runs.
func (c *MockClient) Closed() bool { return c.closed.Load() }

// Received drains and returns everything the hub sent to this client.
func (c *MockClient) Received() []models.Event {
	var events []models.Event
	for {
		select {
		case evt, ok := <-c.send:
			if !ok {
				return events
			}
			events = append(events, evt)
		default:
			return events
		}
	}
}
