package services

import (
	"context"
	"nutcha-shop/repositories"
)

// PreferenceService manages the per-session toggles that live outside the
// cart: favorites, bookmarks and the dark-mode flag. Favorites and bookmarks
// are plain id sets toggled on and off.
type PreferenceService struct {
	repo repositories.PreferenceRepository
}

func NewPreferenceService(repo repositories.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) List(ctx context.Context, kind, sessionID string) ([]string, error) {
	return s.repo.LoadIDs(ctx, kind, sessionID)
}

// Toggle flips membership of id in the set and reports whether the id is
// present after the call.
func (s *PreferenceService) Toggle(ctx context.Context, kind, sessionID, id string) (bool, []string, error) {
	ids, err := s.repo.LoadIDs(ctx, kind, sessionID)
	if err != nil {
		return false, nil, err
	}

	found := false
	next := make([]string, 0, len(ids)+1)
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, id)
	}

	if err := s.repo.SaveIDs(ctx, kind, sessionID, next); err != nil {
		return false, nil, err
	}
	return !found, next, nil
}

func (s *PreferenceService) DarkMode(ctx context.Context, sessionID string) (bool, error) {
	return s.repo.LoadDarkMode(ctx, sessionID)
}

func (s *PreferenceService) SetDarkMode(ctx context.Context, sessionID string, enabled bool) error {
	return s.repo.SaveDarkMode(ctx, sessionID, enabled)
}
