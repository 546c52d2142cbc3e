package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegalService is a provider's published offering in the catalog.
type LegalService struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ProviderID  string    `gorm:"type:uuid;not null;index" json:"provider_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Category    string    `gorm:"type:text;not null" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *LegalService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
