package service_test

import (
	"errors"
	"testing"

	"gamevault/internal/collection"
	"gamevault/internal/models"
)

func TestSettingsReadModifyWrite(t *testing.T) {
	svc, _ := newTestService(t)

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}

	settings.SiteName = "GameVault Staging"
	settings.MaintenanceMode = true
	updated, err := svc.UpdateSettings(actor, settings)
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.Version != settings.Version+1 {
		t.Fatalf("version not bumped: %+v", updated)
	}

	// A concurrent editor holding the old version is rejected.
	settings.SiteName = "GameVault Prod"
	if _, err := svc.UpdateSettings(actor, settings); !errors.Is(err, collection.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	current, _ := svc.GetSettings()
	if current.SiteName != "GameVault Staging" || !current.MaintenanceMode {
		t.Fatalf("update lost: %+v", current)
	}
}

func TestStatsCountsLiveCollections(t *testing.T) {
	svc, sink := newTestService(t)

	if _, err := svc.SubmitComment(actor, models.Comment{GameID: 1, Username: "a", Content: "x", Rating: 5}); err != nil {
		t.Fatalf("SubmitComment: %v", err)
	}
	if _, err := svc.SubmitContactRequest(actor, "A", "a@example.com", "help"); err != nil {
		t.Fatalf("SubmitContactRequest: %v", err)
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Games != 3 || stats.Categories != 4 || stats.Users != 1 {
		t.Fatalf("seed counts wrong: %+v", stats)
	}
	if stats.PendingComments != 1 || stats.OpenRequests != 1 {
		t.Fatalf("pending counts wrong: %+v", stats)
	}
	logCount, _ := sink.Count()
	if stats.LogEntries != logCount {
		t.Fatalf("log count mismatch: %+v vs %d", stats, logCount)
	}
}
