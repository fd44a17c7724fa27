package services

import (
	"context"
	"errors"
	"testing"

	"nutcha-shop/models"
)

func newTestContactService() (*ContactService, *memContactRepo) {
	repo := newMemContactRepo()
	svc := NewContactService(repo, nil)
	svc.sleep = noSleep
	return svc, repo
}

func testMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:    "Hana Sato",
		Email:   "hana@example.com",
		Subject: "Wholesale inquiry",
		Message: "Do you offer bulk pricing on ceremonial matcha?",
	}
}

func TestContactSubmitSucceedsFirstTry(t *testing.T) {
	svc, repo := newTestContactService()
	ctx := context.Background()
	svc.randFloat = alwaysApprove

	repo.SaveDraft(ctx, testSession, &models.ContactMessage{Name: "Hana"})

	if err := svc.Submit(ctx, testSession, testMessage()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	draft, _ := repo.LoadDraft(ctx, testSession)
	if draft != nil {
		t.Errorf("draft = %+v, want discarded after send", draft)
	}
}

func TestContactSubmitRetriesThenSucceeds(t *testing.T) {
	svc, _ := newTestContactService()
	ctx := context.Background()

	attempts := 0
	svc.randFloat = func() float64 {
		attempts++
		if attempts < 3 {
			return 0.99 // fail
		}
		return 0.0 // succeed
	}

	if err := svc.Submit(ctx, testSession, testMessage()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestContactSubmitExhaustsRetries(t *testing.T) {
	svc, repo := newTestContactService()
	ctx := context.Background()

	attempts := 0
	svc.randFloat = func() float64 {
		attempts++
		return 0.99
	}
	repo.SaveDraft(ctx, testSession, &models.ContactMessage{Name: "Hana"})

	err := svc.Submit(ctx, testSession, testMessage())
	if !errors.Is(err, ErrContactDeliveryFailed) {
		t.Fatalf("err = %v, want ErrContactDeliveryFailed", err)
	}
	if attempts != contactAttempts {
		t.Errorf("attempts = %d, want %d", attempts, contactAttempts)
	}

	// Draft survives a failed send so the visitor can try again later.
	draft, _ := repo.LoadDraft(ctx, testSession)
	if draft == nil {
		t.Error("draft discarded despite delivery failure")
	}
}

func TestContactDraftRoundTrip(t *testing.T) {
	svc, _ := newTestContactService()
	ctx := context.Background()

	in := testMessage()
	if err := svc.SaveDraft(ctx, testSession, &in); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	out, err := svc.LoadDraft(ctx, testSession)
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if out == nil || *out != in {
		t.Errorf("LoadDraft = %+v, want %+v", out, in)
	}
}
