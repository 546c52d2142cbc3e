package chathub_test

import (
	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

// Users

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) AddPointsToUser(userID string, points int) error {
	args := m.Called(userID, points)
	return args.Error(0)
}

// Legal services

func (m *MockStorage) SaveService(svc *models.LegalService) error {
	args := m.Called(svc)
	return args.Error(0)
}

func (m *MockStorage) GetServiceByID(id string) (*models.LegalService, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegalService), args.Error(1)
}

func (m *MockStorage) ListServices(providerID string) ([]models.LegalService, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LegalService), args.Error(1)
}

// Bookings

func (m *MockStorage) CreateBooking(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockStorage) GetBookingByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockStorage) ListBookingsForCitizen(citizenID string) ([]models.Booking, error) {
	args := m.Called(citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockStorage) ListBookingsForProvider(providerID string) ([]models.Booking, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockStorage) UpdateBookingStatus(id string, to models.BookingStatus) (*models.Booking, error) {
	args := m.Called(id, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockStorage) ForceBookingStatus(id string, to models.BookingStatus) error {
	args := m.Called(id, to)
	return args.Error(0)
}

// Conversation

func (m *MockStorage) SaveMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) ListMessages(bookingID string) ([]models.ChatMessage, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

// Ratings

func (m *MockStorage) CreateRatingForBooking(r *models.Rating, bookingID string) error {
	args := m.Called(r, bookingID)
	return args.Error(0)
}

func (m *MockStorage) ListRatingsForProvider(providerID string) ([]models.Rating, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

// Realtime + leaderboard

func (m *MockStorage) PublishEvent(evt models.Event) error {
	args := m.Called(evt)
	return args.Error(0)
}

func (m *MockStorage) SubscribeEvents() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}

func (m *MockStorage) IncrProviderScore(providerID string, points int) error {
	args := m.Called(providerID, points)
	return args.Error(0)
}

func (m *MockStorage) TopProviders(n int64) ([]storage.ProviderScore, error) {
	args := m.Called(n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProviderScore), args.Error(1)
}
