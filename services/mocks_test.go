package services

import (
	"context"
	"time"

	"nutcha-shop/models"
)

// In-memory repository fakes shared by the service tests. They mirror the
// Redis implementations' edge behavior: empty cart on miss, fresh draft on
// miss, nil order on miss.

type memCartRepo struct {
	lines map[string][]models.CartLine
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{lines: map[string][]models.CartLine{}}
}

func (r *memCartRepo) LoadLines(_ context.Context, sessionID string) ([]models.CartLine, error) {
	stored := r.lines[sessionID]
	out := make([]models.CartLine, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *memCartRepo) SaveLines(_ context.Context, sessionID string, lines []models.CartLine) error {
	stored := make([]models.CartLine, len(lines))
	copy(stored, lines)
	r.lines[sessionID] = stored
	return nil
}

func (r *memCartRepo) DeleteLines(_ context.Context, sessionID string) error {
	delete(r.lines, sessionID)
	return nil
}

type memCheckoutRepo struct {
	drafts map[string]*models.CheckoutDraft
}

func newMemCheckoutRepo() *memCheckoutRepo {
	return &memCheckoutRepo{drafts: map[string]*models.CheckoutDraft{}}
}

func (r *memCheckoutRepo) LoadDraft(_ context.Context, sessionID string) (*models.CheckoutDraft, error) {
	if d, ok := r.drafts[sessionID]; ok {
		cp := *d
		return &cp, nil
	}
	return models.NewCheckoutDraft(), nil
}

func (r *memCheckoutRepo) SaveDraft(_ context.Context, sessionID string, draft *models.CheckoutDraft) error {
	cp := *draft
	r.drafts[sessionID] = &cp
	return nil
}

func (r *memCheckoutRepo) DeleteDraft(_ context.Context, sessionID string) error {
	delete(r.drafts, sessionID)
	return nil
}

type memCurrentOrderRepo struct {
	orders map[string]*models.Order
}

func newMemCurrentOrderRepo() *memCurrentOrderRepo {
	return &memCurrentOrderRepo{orders: map[string]*models.Order{}}
}

func (r *memCurrentOrderRepo) SaveCurrent(_ context.Context, sessionID string, order *models.Order) error {
	cp := *order
	r.orders[sessionID] = &cp
	return nil
}

func (r *memCurrentOrderRepo) LoadCurrent(_ context.Context, sessionID string) (*models.Order, error) {
	if o, ok := r.orders[sessionID]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *memCurrentOrderRepo) DeleteCurrent(_ context.Context, sessionID string) error {
	delete(r.orders, sessionID)
	return nil
}

type memHistoryRepo struct {
	inserted []models.Order
}

func (r *memHistoryRepo) Insert(_ context.Context, _ string, order *models.Order) error {
	r.inserted = append(r.inserted, *order)
	return nil
}

func (r *memHistoryRepo) ListBySession(_ context.Context, _ string) ([]models.OrderSummary, error) {
	return nil, nil
}

func (r *memHistoryRepo) ListAll(_ context.Context, _, _ int) ([]models.OrderSummary, int, error) {
	return nil, 0, nil
}

type memContactRepo struct {
	drafts map[string]*models.ContactMessage
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{drafts: map[string]*models.ContactMessage{}}
}

func (r *memContactRepo) LoadDraft(_ context.Context, sessionID string) (*models.ContactMessage, error) {
	if d, ok := r.drafts[sessionID]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *memContactRepo) SaveDraft(_ context.Context, sessionID string, draft *models.ContactMessage) error {
	cp := *draft
	r.drafts[sessionID] = &cp
	return nil
}

func (r *memContactRepo) DeleteDraft(_ context.Context, sessionID string) error {
	delete(r.drafts, sessionID)
	return nil
}

type memPreferenceRepo struct {
	ids      map[string][]string
	darkMode map[string]bool
}

func newMemPreferenceRepo() *memPreferenceRepo {
	return &memPreferenceRepo{ids: map[string][]string{}, darkMode: map[string]bool{}}
}

func (r *memPreferenceRepo) LoadIDs(_ context.Context, kind, sessionID string) ([]string, error) {
	out := make([]string, len(r.ids[kind+":"+sessionID]))
	copy(out, r.ids[kind+":"+sessionID])
	return out, nil
}

func (r *memPreferenceRepo) SaveIDs(_ context.Context, kind, sessionID string, ids []string) error {
	stored := make([]string, len(ids))
	copy(stored, ids)
	r.ids[kind+":"+sessionID] = stored
	return nil
}

func (r *memPreferenceRepo) LoadDarkMode(_ context.Context, sessionID string) (bool, error) {
	return r.darkMode[sessionID], nil
}

func (r *memPreferenceRepo) SaveDarkMode(_ context.Context, sessionID string, enabled bool) error {
	r.darkMode[sessionID] = enabled
	return nil
}

// noSleep replaces the simulated processing delays in tests.
func noSleep(_ context.Context, _ time.Duration) error { return nil }

// alwaysApprove / alwaysDecline drive the charge simulation outcome.
func alwaysApprove() float64 { return 0.0 }
func alwaysDecline() float64 { return 0.99 }
