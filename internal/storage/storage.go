package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"legalmarket/backend/internal/apperr"
	"legalmarket/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventsChannel is the redis pub/sub channel carrying chat events between
// the API path and the realtime hub.
const eventsChannel = "chat:events"

// leaderboardKey is the sorted set of provider gamification points.
const leaderboardKey = "leaderboard:providers"

// ProviderScore is one leaderboard row straight from redis.
type ProviderScore struct {
	ProviderID string
	Points     int
}

type Storage interface {
	// Users
	SaveUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	AddPointsToUser(userID string, points int) error

	// Legal services
	SaveService(svc *models.LegalService) error
	GetServiceByID(id string) (*models.LegalService, error)
	ListServices(providerID string) ([]models.LegalService, error)

	// Bookings
	CreateBooking(b *models.Booking) error
	GetBookingByID(id string) (*models.Booking, error)
	ListBookingsForCitizen(citizenID string) ([]models.Booking, error)
	ListBookingsForProvider(providerID string) ([]models.Booking, error)
	UpdateBookingStatus(id string, to models.BookingStatus) (*models.Booking, error)
	ForceBookingStatus(id string, to models.BookingStatus) error

	// Conversation
	SaveMessage(msg *models.ChatMessage) error
	ListMessages(bookingID string) ([]models.ChatMessage, error)

	// Ratings
	CreateRatingForBooking(r *models.Rating, bookingID string) error
	ListRatingsForProvider(providerID string) ([]models.Rating, error)

	// Realtime + leaderboard (redis)
	PublishEvent(evt models.Event) error
	SubscribeEvents() *redis.PubSub
	IncrProviderScore(providerID string, points int) error
	TopProviders(n int64) ([]ProviderScore, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// Migrate creates or updates the schema for every persisted model.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.LegalService{},
		&models.Booking{},
		&models.ChatMessage{},
		&models.Rating{},
	)
}

// --- Users ---

func (s *Service) SaveUser(user *models.User) error {
	if err := s.DB.Save(user).Error; err != nil {
		return apperr.Wrap(apperr.Unavailable, "failed to save user", err)
	}
	return nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load user", err)
	}
	return &user, nil
}

// AddPointsToUser increments the durable points counter on the user row.
func (s *Service) AddPointsToUser(userID string, points int) error {
	err := s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", points)).Error
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, "failed to add points", err)
	}
	return nil
}

// --- Legal services ---

func (s *Service) SaveService(svc *models.LegalService) error {
	if err := s.DB.Save(svc).Error; err != nil {
		return apperr.Wrap(apperr.Unavailable, "failed to save service", err)
	}
	return nil
}

func (s *Service) GetServiceByID(id string) (*models.LegalService, error) {
	var svc models.LegalService
	err := s.DB.First(&svc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "service not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load service", err)
	}
	return &svc, nil
}

// ListServices returns the whole catalog, or one provider's services when
// providerID is non-empty.
func (s *Service) ListServices(providerID string) ([]models.LegalService, error) {
	q := s.DB.Model(&models.LegalService{}).Order("created_at desc")
	if providerID != "" {
		q = q.Where("provider_id = ?", providerID)
	}
	var services []models.LegalService
	if err := q.Find(&services).Error; err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to list services", err)
	}
	return services, nil
}

// --- Bookings ---

func (s *Service) CreateBooking(b *models.Booking) error {
	if err := s.DB.Create(b).Error; err != nil {
		return apperr.Wrap(apperr.Unavailable, "failed to create booking", err)
	}
	return nil
}

func (s *Service) GetBookingByID(id string) (*models.Booking, error) {
	var b models.Booking
	err := s.DB.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "booking not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load booking", err)
	}
	return &b, nil
}

func (s *Service) ListBookingsForCitizen(citizenID string) ([]models.Booking, error) {
	return s.listBookings("citizen_id = ?", citizenID)
}

func (s *Service) ListBookingsForProvider(providerID string) ([]models.Booking, error) {
	return s.listBookings("provider_id = ?", providerID)
}

func (s *Service) listBookings(cond string, arg string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where(cond, arg).Order("created_at desc").Find(&bookings).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to list bookings", err)
	}
	return bookings, nil
}

// UpdateBookingStatus applies a lifecycle transition inside a transaction.
// The row is re-read under a lock and the transition revalidated there, so
// the loser of a concurrent update sees the fresh status and gets
// InvalidTransition instead of clobbering the winner.
func (s *Service) UpdateBookingStatus(id string, to models.BookingStatus) (*models.Booking, error) {
	var b models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "booking not found")
		}
		if err != nil {
			return apperr.Wrap(apperr.Unavailable, "failed to load booking", err)
		}
		if !b.Status.CanTransitionTo(to) {
			return apperr.Newf(apperr.InvalidTransition, "cannot change status from %s to %s", b.Status, to)
		}
		b.Status = to
		if err := tx.Save(&b).Error; err != nil {
			return apperr.Wrap(apperr.Unavailable, "failed to update booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ForceBookingStatus sets a status without consulting the transition table.
// Reserved for out-of-core collaborators (admin cancellation/completion).
func (s *Service) ForceBookingStatus(id string, to models.BookingStatus) error {
	res := s.DB.Model(&models.Booking{}).Where("id = ?", id).Update("status", to)
	if res.Error != nil {
		return apperr.Wrap(apperr.Unavailable, "failed to set booking status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "booking not found")
	}
	return nil
}

// --- Conversation ---

// SaveMessage persists a message; the ID and CreatedAt are assigned here.
func (s *Service) SaveMessage(msg *models.ChatMessage) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message for booking %s: %v", msg.BookingID, err)
		return apperr.Wrap(apperr.Unavailable, "failed to save message", err)
	}
	return nil
}

// ListMessages returns the full conversation in creation order.
func (s *Service) ListMessages(bookingID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.DB.Where("booking_id = ?", bookingID).Order("created_at asc").Find(&messages).Error
	if err != nil {
		log.Printf("ERROR: Failed to list messages for booking %s: %v", bookingID, err)
		return nil, apperr.Wrap(apperr.Unavailable, "failed to load conversation", err)
	}
	return messages, nil
}

// --- Ratings ---

// CreateRatingForBooking persists a rating and attaches it to the booking in
// one transaction. The guarded update keeps the rating reference set-once
// under concurrent submissions, and a conflict rolls the rating row back so
// no orphan is left behind.
func (s *Service) CreateRatingForBooking(r *models.Rating, bookingID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(r).Error; err != nil {
			return apperr.Wrap(apperr.Unavailable, "failed to save rating", err)
		}
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND rating_id IS NULL", bookingID).
			Update("rating_id", r.ID)
		if res.Error != nil {
			return apperr.Wrap(apperr.Unavailable, "failed to attach rating", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.Conflict, "booking already rated")
		}
		return nil
	})
}

func (s *Service) ListRatingsForProvider(providerID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.DB.Where("provider_id = ?", providerID).Order("created_at desc").Find(&ratings).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to list ratings", err)
	}
	return ratings, nil
}

// --- Realtime + leaderboard ---

// PublishEvent pushes a chat event into redis pub/sub for the hub to fan out.
func (s *Service) PublishEvent(evt models.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if err := s.Redis.Publish(s.Ctx, eventsChannel, payload).Err(); err != nil {
		return apperr.Wrap(apperr.Unavailable, "failed to publish event", err)
	}
	return nil
}

// SubscribeEvents subscribes to the chat event channel.
func (s *Service) SubscribeEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, eventsChannel)
}

// IncrProviderScore bumps the provider's score in the leaderboard sorted set.
func (s *Service) IncrProviderScore(providerID string, points int) error {
	return s.Redis.ZIncrBy(s.Ctx, leaderboardKey, float64(points), providerID).Err()
}

// TopProviders returns the n best-scored providers, highest first.
func (s *Service) TopProviders(n int64) ([]ProviderScore, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.Redis.ZRevRangeWithScores(s.Ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "failed to read leaderboard", err)
	}
	scores := make([]ProviderScore, 0, len(rows))
	for _, row := range rows {
		id, ok := row.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, ProviderScore{ProviderID: id, Points: int(row.Score)})
	}
	return scores, nil
}
