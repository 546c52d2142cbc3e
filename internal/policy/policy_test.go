package policy_test

import (
	"testing"

	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/policy"

	"github.com/stretchr/testify/assert"
)

func booking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:         "b1",
		CitizenID:  "citizen-1",
		ProviderID: "provider-1",
		Status:     status,
	}
}

func TestIsParticipant(t *testing.T) {
	b := booking(models.StatusConfirmed)

	assert.True(t, policy.IsParticipant(b, "citizen-1"))
	assert.True(t, policy.IsParticipant(b, "provider-1"))
	assert.False(t, policy.IsParticipant(b, "stranger"))
	assert.False(t, policy.IsParticipant(b, ""))
}

func TestChatGates(t *testing.T) {
	tests := []struct {
		status   models.BookingStatus
		readable bool
		writable bool
	}{
		{models.StatusPending, false, false},
		{models.StatusConfirmed, true, true},
		{models.StatusResolved, true, true},
		{models.StatusClosed, true, false},
		{models.StatusCompleted, true, false},
		{models.StatusCancelled, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := booking(tt.status)
			assert.Equal(t, tt.readable, policy.IsChatReadable(b), "readable")
			assert.Equal(t, tt.writable, policy.IsChatWritable(b), "writable")
		})
	}
}

// Writable is strictly narrower than readable: Closed/Completed bookings
// are read-only archives.
func TestWritableImpliesReadable(t *testing.T) {
	statuses := []models.BookingStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusResolved,
		models.StatusClosed, models.StatusCancelled, models.StatusCompleted,
	}
	for _, s := range statuses {
		b := booking(s)
		if policy.IsChatWritable(b) {
			assert.True(t, policy.IsChatReadable(b), "writable %s must also be readable", s)
		}
	}
}

func TestIsRateable(t *testing.T) {
	ratingID := "r1"

	t.Run("citizen on resolved booking", func(t *testing.T) {
		assert.True(t, policy.IsRateable(booking(models.StatusResolved), "citizen-1"))
	})
	t.Run("closed and completed stay rateable", func(t *testing.T) {
		assert.True(t, policy.IsRateable(booking(models.StatusClosed), "citizen-1"))
		assert.True(t, policy.IsRateable(booking(models.StatusCompleted), "citizen-1"))
	})
	t.Run("not before resolved", func(t *testing.T) {
		assert.False(t, policy.IsRateable(booking(models.StatusPending), "citizen-1"))
		assert.False(t, policy.IsRateable(booking(models.StatusConfirmed), "citizen-1"))
		assert.False(t, policy.IsRateable(booking(models.StatusCancelled), "citizen-1"))
	})
	t.Run("only the citizen", func(t *testing.T) {
		assert.False(t, policy.IsRateable(booking(models.StatusResolved), "provider-1"))
		assert.False(t, policy.IsRateable(booking(models.StatusResolved), "stranger"))
	})
	t.Run("only once", func(t *testing.T) {
		b := booking(models.StatusResolved)
		b.RatingID = &ratingID
		assert.False(t, policy.IsRateable(b, "citizen-1"))
	})
}
