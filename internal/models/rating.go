package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a citizen's score for a finished booking. A booking is rated at
// most once; the back-reference lives in Booking.RatingID.
type Rating struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	ServiceID  string    `gorm:"type:uuid;not null;index" json:"service_id"`
	CitizenID  string    `gorm:"type:uuid;not null" json:"citizen_id"`
	ProviderID string    `gorm:"type:uuid;not null;index" json:"provider_id"`
	Score      int       `gorm:"not null" json:"score"`
	Comment    string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
