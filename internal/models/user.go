package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq" // needed for pq.StringArray
	"gorm.io/gorm"
)

// Roles recognized by the marketplace. Everyone who is not a citizen offers
// legal services of some kind.
const (
	RoleCitizen        = "citizen"
	RoleAdvocate       = "advocate"
	RoleMediator       = "mediator"
	RoleArbitrator     = "arbitrator"
	RoleNotary         = "notary"
	RoleDocumentWriter = "document_writer"
)

// ProviderRoles lists every role that may publish services and receive bookings.
var ProviderRoles = []string{RoleAdvocate, RoleMediator, RoleArbitrator, RoleNotary, RoleDocumentWriter}

// IsProviderRole reports whether the role belongs to a service provider.
func IsProviderRole(role string) bool {
	for _, r := range ProviderRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is a marketplace account. Identity verification and credentials live
// in the external identity service; this row carries the profile data the
// core needs (role routing, gamification points, notification target).
type User struct {
	ID     string         `gorm:"primaryKey" json:"id"`
	Name   string         `gorm:"type:text;not null" json:"name"`
	Email  string         `gorm:"uniqueIndex" json:"email"`
	Role   string         `gorm:"type:text;not null" json:"role"`
	Points int            `json:"points"`
	Badges pq.StringArray `gorm:"type:text[]" json:"badges,omitempty"`
	// TelegramChatID, when non-zero, is where booking notifications go.
	TelegramChatID int64 `json:"-"`
}

// BeforeCreate generates a new UUID for the user if the ID is not set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
