package services

import (
	"context"
	"nutcha-shop/models"
	"nutcha-shop/repositories"
)

// CartService owns the line list of each session's cart. All mutation goes
// through its operations; every mutation writes the full list back to the
// repository before returning, so the stored record is always current.
//
// Callers are responsible for validating candidate lines (positive quantity,
// non-negative price) before AddLine; the store does not re-check them.
type CartService struct {
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) GetLines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	return s.repo.LoadLines(ctx, sessionID)
}

// AddLine merges the candidate into an existing line with the same
// (id, name, size) key by summing quantities, or appends it as a new line.
func (s *CartService) AddLine(ctx context.Context, sessionID string, candidate models.CartLine) ([]models.CartLine, error) {
	if candidate.Size == "" {
		candidate.Size = models.DefaultSize
	}

	lines, err := s.repo.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines = mergeLine(lines, candidate)

	if err := s.repo.SaveLines(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets the matching line's quantity. A quantity below 1 is a
// silent no-op, as is a key that matches no line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, id, name, size string, quantity int) ([]models.CartLine, error) {
	lines, err := s.repo.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return lines, nil
	}

	changed := false
	for i := range lines {
		if lines[i].Matches(id, name, size) {
			lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return lines, nil
	}

	if err := s.repo.SaveLines(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveLine deletes the matching line. Removing an absent line is a no-op.
func (s *CartService) RemoveLine(ctx context.Context, sessionID, id, name, size string) ([]models.CartLine, error) {
	lines, err := s.repo.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, line := range lines {
		if !line.Matches(id, name, size) {
			kept = append(kept, line)
		}
	}

	if err := s.repo.SaveLines(ctx, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SaveForLater flags the matching line; it stays stored but is excluded from
// pricing and checkout. There is no operation to restore a saved line.
func (s *CartService) SaveForLater(ctx context.Context, sessionID, id, name, size string) ([]models.CartLine, error) {
	lines, err := s.repo.LoadLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].Matches(id, name, size) {
			lines[i].Saved = true
			break
		}
	}

	if err := s.repo.SaveLines(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.repo.DeleteLines(ctx, sessionID)
}

func mergeLine(lines []models.CartLine, candidate models.CartLine) []models.CartLine {
	for i := range lines {
		if lines[i].Matches(candidate.ID, candidate.Name, candidate.Size) {
			lines[i].Quantity += candidate.Quantity
			return lines
		}
	}
	return append(lines, candidate)
}
