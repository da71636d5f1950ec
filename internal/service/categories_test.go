package service_test

import (
	"errors"
	"testing"

	"gamevault/internal/collection"
	"gamevault/internal/models"
	"gamevault/internal/service"
)

// Slug uniqueness has never been enforced; this documents the current
// behavior rather than endorsing it.
func TestDuplicateCategorySlugsAccepted(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CreateCategory(actor, models.Category{Name: "Roguelike", Slug: "roguelike"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.CreateCategory(actor, models.Category{Name: "Rogue-like", Slug: "roguelike"})
	if err != nil {
		t.Fatalf("duplicate slug rejected: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("duplicate categories share an id")
	}
}

func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	svc, _ := newTestService(t)

	categories, err := svc.ListCategories("racing")
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected seeded racing category, got %+v", categories)
	}

	if err := svc.DeleteCategory(actor, categories[0].ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	// The game keeps its now-dangling category slug.
	games, _ := svc.ListGames(service.GameQuery{Category: "racing"})
	if len(games) != 1 {
		t.Fatalf("category deletion cascaded into games: %+v", games)
	}
}

func TestUpdateCategoryVersionGuard(t *testing.T) {
	svc, _ := newTestService(t)

	categories, _ := svc.ListCategories("arcade")
	category := categories[0]

	category.Description = "Short sessions"
	updated, err := svc.UpdateCategory(actor, category.ID, category)
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.Version != category.Version+1 {
		t.Fatalf("version not bumped: %+v", updated)
	}

	// Replaying the same edit with the old version must conflict.
	if _, err := svc.UpdateCategory(actor, category.ID, category); !errors.Is(err, collection.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
