package services

import (
	"context"
	"testing"

	"nutcha-shop/repositories"
)

func TestToggleFavorite(t *testing.T) {
	svc := NewPreferenceService(newMemPreferenceRepo())
	ctx := context.Background()

	added, ids, err := svc.Toggle(ctx, repositories.KindFavorites, testSession, "matcha-1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !added || len(ids) != 1 {
		t.Errorf("first toggle = (%v, %v), want added with one id", added, ids)
	}

	added, ids, err = svc.Toggle(ctx, repositories.KindFavorites, testSession, "matcha-1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if added || len(ids) != 0 {
		t.Errorf("second toggle = (%v, %v), want removed and empty", added, ids)
	}
}

func TestFavoritesAndBookmarksAreSeparate(t *testing.T) {
	svc := NewPreferenceService(newMemPreferenceRepo())
	ctx := context.Background()

	svc.Toggle(ctx, repositories.KindFavorites, testSession, "matcha-1")
	svc.Toggle(ctx, repositories.KindBookmarks, testSession, "whisk-2")

	favs, _ := svc.List(ctx, repositories.KindFavorites, testSession)
	marks, _ := svc.List(ctx, repositories.KindBookmarks, testSession)

	if len(favs) != 1 || favs[0] != "matcha-1" {
		t.Errorf("favorites = %v", favs)
	}
	if len(marks) != 1 || marks[0] != "whisk-2" {
		t.Errorf("bookmarks = %v", marks)
	}
}

func TestDarkModeDefaultsOff(t *testing.T) {
	svc := NewPreferenceService(newMemPreferenceRepo())
	ctx := context.Background()

	enabled, err := svc.DarkMode(ctx, testSession)
	if err != nil {
		t.Fatalf("DarkMode: %v", err)
	}
	if enabled {
		t.Error("dark mode enabled by default, want off")
	}

	if err := svc.SetDarkMode(ctx, testSession, true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	enabled, _ = svc.DarkMode(ctx, testSession)
	if !enabled {
		t.Error("dark mode not persisted")
	}
}
