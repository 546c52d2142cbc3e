// Package catalog manages the legal-service listings the booking flow
// resolves providers from. Providers publish and see their own listings;
// citizens browse everything.
package catalog

import (
	"strings"

	"legalmarket/backend/internal/apperr"
	"legalmarket/backend/internal/models"
	"legalmarket/backend/internal/storage"
)

type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// AddService publishes a new listing for a provider.
func (s *Service) AddService(providerID, role, title, category, description string, price float64) (*models.LegalService, error) {
	if !models.IsProviderRole(role) {
		return nil, apperr.New(apperr.Forbidden, "only providers can publish services")
	}
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" || category == "" {
		return nil, apperr.New(apperr.InvalidArgument, "title and category are required")
	}
	if price < 0 {
		return nil, apperr.New(apperr.InvalidArgument, "price cannot be negative")
	}

	svc := &models.LegalService{
		ProviderID:  providerID,
		Title:       title,
		Category:    category,
		Description: strings.TrimSpace(description),
		Price:       price,
	}
	if err := s.Storage.SaveService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServices is viewer-scoped: providers see only their own listings,
// everyone else sees the whole catalog.
func (s *Service) ListServices(viewerID, role string) ([]models.LegalService, error) {
	if models.IsProviderRole(role) {
		return s.Storage.ListServices(viewerID)
	}
	return s.Storage.ListServices("")
}

// GetService fetches one listing. A provider may only fetch their own.
func (s *Service) GetService(id, viewerID, role string) (*models.LegalService, error) {
	svc, err := s.Storage.GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	if models.IsProviderRole(role) && svc.ProviderID != viewerID {
		return nil, apperr.New(apperr.Forbidden, "you are not authorized to view this service")
	}
	return svc, nil
}
