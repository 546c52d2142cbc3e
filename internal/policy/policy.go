// Package policy holds the pure access decisions for a booking's chat and
// rating surface. Every function takes a freshly loaded booking; nothing
// here caches or mutates state.
package policy

import "legalmarket/backend/internal/models"

// IsParticipant reports whether userID is the booking's citizen or provider.
func IsParticipant(b *models.Booking, userID string) bool {
	return userID != "" && (userID == b.CitizenID || userID == b.ProviderID)
}

// IsChatReadable reports whether the conversation may be read. Closed and
// Completed bookings stay readable as archives.
func IsChatReadable(b *models.Booking) bool {
	switch b.Status {
	case models.StatusConfirmed, models.StatusResolved, models.StatusClosed, models.StatusCompleted:
		return true
	}
	return false
}

// IsChatWritable reports whether new messages may be posted. Narrower than
// readable: archived bookings are read-only.
func IsChatWritable(b *models.Booking) bool {
	switch b.Status {
	case models.StatusConfirmed, models.StatusResolved:
		return true
	}
	return false
}

// IsRateable reports whether userID may submit a rating for the booking:
// only the citizen, only once, and only after the work is resolved.
func IsRateable(b *models.Booking, userID string) bool {
	if userID != b.CitizenID || b.RatingID != nil {
		return false
	}
	switch b.Status {
	case models.StatusResolved, models.StatusClosed, models.StatusCompleted:
		return true
	}
	return false
}
