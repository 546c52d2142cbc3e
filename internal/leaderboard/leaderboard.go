// Package leaderboard reads the provider gamification ranking. Points are
// written by the rating path (redis sorted set plus the durable counter on
// the user row); this package only presents them.
package leaderboard

import (
	"legalmarket/backend/internal/apperr"
	"legalmarket/backend/internal/storage"
)

// Entry is one leaderboard row as served to clients.
type Entry struct {
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
}

type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Top returns the n highest-scored providers with their display names.
// Providers whose user row is gone are skipped rather than failing the page.
func (s *Service) Top(n int64) ([]Entry, error) {
	scores, err := s.Storage.TopProviders(n)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(scores))
	for _, sc := range scores {
		entry := Entry{ProviderID: sc.ProviderID, Points: sc.Points}
		user, err := s.Storage.GetUserByID(sc.ProviderID)
		if err != nil {
			if !apperr.IsKind(err, apperr.NotFound) {
				return nil, err
			}
		} else {
			entry.Name = user.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
