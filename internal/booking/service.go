// Package booking orchestrates the booking lifecycle and the gated
// conversation on top of it: creation, status transitions, chat access and
// rating submission. All access decisions run against a booking read fresh
// at the start of each operation.
package booking

import (
	"log"
	"strings"
	"time"

	"legalmarket/backend/internal/apperr"
	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/policy"
	"legalmarket/backend/internal/storage"
)

// ratingPointsFactor converts a 1..5 score into leaderboard points.
const ratingPointsFactor = 5

// Notifier receives best-effort notifications about booking activity.
type Notifier interface {
	BookingCreated(b *models.Booking)
	BookingStatusChanged(b *models.Booking)
}

// Service is the façade consumed by the HTTP handlers and the admin CLI.
type Service struct {
	Storage storage.Storage
	Notify  Notifier // optional
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Conversation bundles a booking with its full message log.
type Conversation struct {
	Booking  *models.Booking      `json:"booking"`
	Messages []models.ChatMessage `json:"messages"`
}

// parseBookingDate accepts a plain date or a full RFC3339 timestamp.
func parseBookingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperr.New(apperr.InvalidArgument, "booking date is required")
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.New(apperr.InvalidArgument, "invalid booking date")
}

// CreateBooking resolves the service to its provider and opens a Pending
// booking for the citizen.
func (s *Service) CreateBooking(citizenID, serviceID, bookingDate string) (*models.Booking, error) {
	svc, err := s.Storage.GetServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID == citizenID {
		return nil, apperr.New(apperr.InvalidArgument, "cannot book your own service")
	}
	date, err := parseBookingDate(bookingDate)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ServiceID:   svc.ID,
		CitizenID:   citizenID,
		ProviderID:  svc.ProviderID,
		BookingDate: date,
		Status:      models.StatusPending,
	}
	if err := s.Storage.CreateBooking(b); err != nil {
		return nil, err
	}
	if s.Notify != nil {
		s.Notify.BookingCreated(b)
	}
	return b, nil
}

// ListUserBookings is caller-scoped: citizens see bookings they made,
// providers see bookings assigned to them.
func (s *Service) ListUserBookings(userID, role string) ([]models.Booking, error) {
	if role == models.RoleCitizen {
		return s.Storage.ListBookingsForCitizen(userID)
	}
	if models.IsProviderRole(role) {
		return s.Storage.ListBookingsForProvider(userID)
	}
	return nil, apperr.New(apperr.Forbidden, "unknown role")
}

// ChangeStatus moves a booking along its lifecycle. Only the booking's
// provider may do this, and only along the allowed transition table. The
// storage layer revalidates the transition under a row lock, so a racing
// second request fails with InvalidTransition instead of double-applying.
func (s *Service) ChangeStatus(bookingID, actorID string, requested models.BookingStatus) (*models.Booking, error) {
	b, err := s.Storage.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != actorID {
		return nil, apperr.New(apperr.Forbidden, "only the booking's provider can change its status")
	}
	if !b.Status.CanTransitionTo(requested) {
		return nil, apperr.Newf(apperr.InvalidTransition, "cannot change status from %s to %s", b.Status, requested)
	}
	updated, err := s.Storage.UpdateBookingStatus(bookingID, requested)
	if err != nil {
		return nil, err
	}
	if s.Notify != nil {
		s.Notify.BookingStatusChanged(updated)
	}
	return updated, nil
}

// GetConversation returns the booking plus its full message log, provided
// the caller is a participant and the chat has unlocked.
func (s *Service) GetConversation(bookingID, callerID string) (*Conversation, error) {
	b, err := s.Storage.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if !policy.IsParticipant(b, callerID) {
		return nil, apperr.New(apperr.Forbidden, "access denied for this conversation")
	}
	if !policy.IsChatReadable(b) {
		return nil, apperr.New(apperr.ChatLocked, "chat will activate once the provider accepts this request")
	}
	messages, err := s.Storage.ListMessages(bookingID)
	if err != nil {
		return nil, err
	}
	return &Conversation{Booking: b, Messages: messages}, nil
}

// PostMessage appends a message to an unlocked conversation and pushes it to
// the realtime gateway. The broadcast is fire-and-forget: delivery problems
// are logged and never fail the post, durability lives in the store.
func (s *Service) PostMessage(bookingID, senderID, content string) (*models.ChatMessage, error) {
	b, err := s.Storage.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if !policy.IsParticipant(b, senderID) {
		return nil, apperr.New(apperr.Forbidden, "access denied for this conversation")
	}
	if !policy.IsChatWritable(b) {
		return nil, apperr.New(apperr.ChatLocked, "chat is not open for new messages")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.InvalidArgument, "message content is required")
	}

	msg := &models.ChatMessage{
		BookingID:  b.ID,
		SenderID:   senderID,
		SenderRole: b.RoleOf(senderID),
		Content:    content,
	}
	if err := s.Storage.SaveMessage(msg); err != nil {
		return nil, err
	}

	evt := models.Event{Type: models.EventNewMessage, BookingID: b.ID, Message: msg}
	if err := s.Storage.PublishEvent(evt); err != nil {
		log.Printf("WARNING: failed to broadcast message %s: %v", msg.ID, err)
	}
	return msg, nil
}

// SubmitRating records the citizen's score for a finished booking, attaches
// it to the booking exactly once and awards gamification points to the
// provider.
func (s *Service) SubmitRating(bookingID, citizenID string, score int, comment string) (*models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, apperr.New(apperr.InvalidArgument, "rating must be between 1 and 5")
	}
	b, err := s.Storage.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.CitizenID != citizenID {
		return nil, apperr.New(apperr.Forbidden, "you can only rate your own bookings")
	}
	if !policy.IsRateable(b, citizenID) {
		if b.RatingID != nil {
			return nil, apperr.New(apperr.Conflict, "booking already rated")
		}
		return nil, apperr.New(apperr.InvalidArgument, "only resolved bookings can be rated")
	}

	rating := &models.Rating{
		ServiceID:  b.ServiceID,
		CitizenID:  citizenID,
		ProviderID: b.ProviderID,
		Score:      score,
		Comment:    comment,
	}
	// One transaction: a duplicate that lost the race rolls the rating row
	// back along with the conflict, leaving no orphan behind.
	if err := s.Storage.CreateRatingForBooking(rating, b.ID); err != nil {
		return nil, err
	}

	points := score * ratingPointsFactor
	if err := s.Storage.AddPointsToUser(b.ProviderID, points); err != nil {
		log.Printf("WARNING: failed to add points to provider %s: %v", b.ProviderID, err)
	}
	if err := s.Storage.IncrProviderScore(b.ProviderID, points); err != nil {
		log.Printf("WARNING: failed to update leaderboard for provider %s: %v", b.ProviderID, err)
	}
	return rating, nil
}

// ProviderRatings returns a provider's ratings plus their average score, or
// nil average when there are none.
func (s *Service) ProviderRatings(providerID string) ([]models.Rating, *float64, error) {
	ratings, err := s.Storage.ListRatingsForProvider(providerID)
	if err != nil {
		return nil, nil, err
	}
	if len(ratings) == 0 {
		return ratings, nil, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(ratings))
	return ratings, &avg, nil
}
