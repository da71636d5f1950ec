package service_test

import (
	"errors"
	"reflect"
	"testing"

	"gamevault/internal/collection"
	"gamevault/internal/models"
	"gamevault/internal/service"
)

func TestCreateGameAssignsStrictlyGreaterID(t *testing.T) {
	svc, _ := newTestService(t)

	before, err := svc.ListGames(service.GameQuery{})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	created, err := svc.CreateGame(actor, models.Game{Title: "Voidrunner", Rating: 4.0})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	for _, g := range before {
		if created.ID <= g.ID {
			t.Fatalf("new id %d not strictly greater than existing id %d", created.ID, g.ID)
		}
	}
	if created.Version != 1 {
		t.Fatalf("new record version = %d, want 1", created.Version)
	}
}

func TestCreateGameValidation(t *testing.T) {
	svc, sink := newTestService(t)
	before := auditCount(t, sink)

	_, err := svc.CreateGame(actor, models.Game{Rating: 2})
	var validation *collection.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Fields[0] != "title" {
		t.Fatalf("expected title failure, got %v", validation.Fields)
	}

	// A rejected create is not a mutation: no record, no audit entry.
	games, _ := svc.ListGames(service.GameQuery{})
	if len(games) != 3 {
		t.Fatalf("rejected create changed the collection: %d games", len(games))
	}
	if auditCount(t, sink) != before {
		t.Fatal("rejected create wrote an audit entry")
	}
}

func TestUpdateGameTouchesOnlyTarget(t *testing.T) {
	svc, _ := newTestService(t)

	before, err := svc.ListGames(service.GameQuery{})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	target, err := svc.GetGame(2)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	target.Title = "Neon Drift Remastered"

	updated, err := svc.UpdateGame(actor, 2, target)
	if err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}
	if updated.Version != target.Version+1 {
		t.Fatalf("version not bumped: %d", updated.Version)
	}

	after, _ := svc.ListGames(service.GameQuery{})
	for _, g := range after {
		if g.ID == 2 {
			if g.Title != "Neon Drift Remastered" {
				t.Fatalf("update not applied: %+v", g)
			}
			continue
		}
		for _, orig := range before {
			if orig.ID == g.ID && !reflect.DeepEqual(orig, g) {
				t.Fatalf("untargeted record %d changed: %+v -> %+v", g.ID, orig, g)
			}
		}
	}
}

func TestUpdateGameStaleVersionConflicts(t *testing.T) {
	svc, _ := newTestService(t)

	game, err := svc.GetGame(1)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}

	// First editor wins.
	first := game
	first.Title = "Starfall Tactics: Gold"
	if _, err := svc.UpdateGame(actor, 1, first); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Second editor still holds the old version and must be rejected
	// instead of silently overwriting.
	second := game
	second.Title = "Starfall Tactics: Lead"
	if _, err := svc.UpdateGame(actor, 1, second); !errors.Is(err, collection.ErrConflict) {
		t.Fatalf("expected ErrConflict for stale version, got %v", err)
	}

	current, _ := svc.GetGame(1)
	if current.Title != "Starfall Tactics: Gold" {
		t.Fatalf("conflicting edit overwrote the first: %+v", current)
	}
}

func TestDeleteGameShrinksByOne(t *testing.T) {
	svc, _ := newTestService(t)

	before, _ := svc.ListGames(service.GameQuery{})
	if err := svc.DeleteGame(actor, 2); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	after, _ := svc.ListGames(service.GameQuery{})
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d games, got %d", len(before)-1, len(after))
	}
	if _, err := svc.GetGame(2); !errors.Is(err, collection.ErrNotFound) {
		t.Fatalf("deleted game still present: %v", err)
	}

	if err := svc.DeleteGame(actor, 2); !errors.Is(err, collection.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestListGamesFilterAndSort(t *testing.T) {
	svc, _ := newTestService(t)

	byText, err := svc.ListGames(service.GameQuery{Q: "SYNTHWAVE"})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(byText) != 1 || byText[0].ID != 2 {
		t.Fatalf("case-insensitive description match failed: %+v", byText)
	}

	byCategory, _ := svc.ListGames(service.GameQuery{Category: "racing"})
	if len(byCategory) != 1 || byCategory[0].ID != 2 {
		t.Fatalf("category filter failed: %+v", byCategory)
	}

	byRating, _ := svc.ListGames(service.GameQuery{SortBy: "rating-desc"})
	if byRating[0].ID != 3 {
		t.Fatalf("rating sort failed: %+v", byRating)
	}
}

func TestEveryMutationAppendsOneAuditEntry(t *testing.T) {
	svc, sink := newTestService(t)
	if n := auditCount(t, sink); n != 0 {
		t.Fatalf("expected empty audit log after bootstrap, got %d", n)
	}

	created, err := svc.CreateGame(actor, models.Game{Title: "Voidrunner", Rating: 4})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	created.Description = "updated"
	if _, err := svc.UpdateGame(actor, created.ID, created); err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}
	if err := svc.DeleteGame(actor, created.ID); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	if n := auditCount(t, sink); n != 3 {
		t.Fatalf("3 mutations produced %d audit entries", n)
	}
}
