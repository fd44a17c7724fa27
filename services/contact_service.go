package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"nutcha-shop/models"
	"nutcha-shop/repositories"
	"time"
)

// ErrContactDeliveryFailed is returned after every delivery attempt failed.
var ErrContactDeliveryFailed = errors.New("your message could not be sent, please try again later")

// contactAttempts is the retry budget for the simulated delivery. Unlike the
// checkout payment simulation (one attempt, user retries), the contact form
// retries transparently.
const contactAttempts = 3

// ContactMailer sends the acknowledgement email. Implemented by
// models.EmailService; nil disables mailing.
type ContactMailer interface {
	SendContactAckEmail(to, name, subject string) error
}

// ContactService handles the contact form: draft persistence and a simulated
// unreliable delivery with automatic retries.
type ContactService struct {
	repo   repositories.ContactRepository
	mailer ContactMailer

	delay       time.Duration
	successRate float64
	randFloat   func() float64
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewContactService(repo repositories.ContactRepository, mailer ContactMailer) *ContactService {
	return &ContactService{
		repo:        repo,
		mailer:      mailer,
		delay:       1 * time.Second,
		successRate: 0.8,
		randFloat:   rand.Float64,
		sleep:       sleepContext,
	}
}

// Submit attempts the simulated delivery up to the retry budget. On success
// the stored draft is discarded and an acknowledgement email goes out on a
// best-effort basis.
func (s *ContactService) Submit(ctx context.Context, sessionID string, msg models.ContactMessage) error {
	var lastErr error
	for attempt := 1; attempt <= contactAttempts; attempt++ {
		lastErr = s.deliver(ctx)
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("contact delivery attempt %d/%d failed: %v", attempt, contactAttempts, lastErr)
	}
	if lastErr != nil {
		return ErrContactDeliveryFailed
	}

	if err := s.repo.DeleteDraft(ctx, sessionID); err != nil {
		log.Printf("contact draft cleanup failed: %v", err)
	}
	if s.mailer != nil {
		if err := s.mailer.SendContactAckEmail(msg.Email, msg.Name, msg.Subject); err != nil {
			log.Printf("contact acknowledgement email failed: %v", err)
		}
	}
	return nil
}

func (s *ContactService) deliver(ctx context.Context) error {
	if err := s.sleep(ctx, s.delay); err != nil {
		return err
	}
	if s.randFloat() < s.successRate {
		return nil
	}
	return errors.New("simulated delivery failure")
}

func (s *ContactService) LoadDraft(ctx context.Context, sessionID string) (*models.ContactMessage, error) {
	return s.repo.LoadDraft(ctx, sessionID)
}

func (s *ContactService) SaveDraft(ctx context.Context, sessionID string, draft *models.ContactMessage) error {
	return s.repo.SaveDraft(ctx, sessionID, draft)
}
