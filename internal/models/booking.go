package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusResolved  BookingStatus = "Resolved"
	StatusClosed    BookingStatus = "Closed"
	StatusCancelled BookingStatus = "Cancelled"
	StatusCompleted BookingStatus = "Completed"
)

// validTransitions is the provider-driven lifecycle. Cancelled and Completed
// are terminal values set outside this path (admin tooling), never targets
// of a regular status change.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed},
	StatusConfirmed: {StatusResolved},
	StatusResolved:  {StatusClosed},
	StatusClosed:    {},
	StatusCancelled: {},
	StatusCompleted: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

func (s BookingStatus) String() string { return string(s) }

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// Booking is a citizen's request to engage a provider's service on a given
// date. The provider is copied from the service at creation time and never
// changes afterwards.
type Booking struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	ServiceID   string        `gorm:"type:uuid;not null;index" json:"service_id"`
	CitizenID   string        `gorm:"type:uuid;not null;index" json:"citizen_id"`
	ProviderID  string        `gorm:"type:uuid;not null;index" json:"provider_id"`
	BookingDate time.Time     `gorm:"not null" json:"booking_date"`
	Status      BookingStatus `gorm:"type:text;not null;default:'Pending'" json:"status"`
	// RatingID is set exactly once, by the rating submission path.
	RatingID  *string   `gorm:"type:uuid" json:"rating_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate generates a UUID for the booking if the ID is not set yet.
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// RoleOf derives the chat role of a sender from the booking itself: the
// booking's citizen speaks as "citizen", anyone else as "provider". The
// role is never taken from client input.
func (b *Booking) RoleOf(userID string) SenderRole {
	if userID == b.CitizenID {
		return SenderCitizen
	}
	return SenderProvider
}
