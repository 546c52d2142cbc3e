package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SenderRole is the chat-level role of a message author, derived from the
// booking (see Booking.RoleOf) rather than supplied by the client.
type SenderRole string

const (
	SenderCitizen  SenderRole = "citizen"
	SenderProvider SenderRole = "provider"
)

// ChatMessage is one persisted message in a booking's conversation.
// Messages are immutable once created.
type ChatMessage struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	BookingID  string     `gorm:"type:uuid;not null;index:idx_booking_msg" json:"booking_id"`
	SenderID   string     `gorm:"type:uuid;not null;index:idx_booking_msg" json:"sender_id"`
	SenderRole SenderRole `gorm:"type:text;not null" json:"sender_role"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
