package storage_test

import (
	"errors"
	"testing"

	"gamevault/internal/storage"
)

// Both ports must behave identically from the collection layer's point
// of view.
func testPort(t *testing.T, port storage.Port) {
	t.Helper()

	if _, err := port.Get("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := port.Set("greeting", []byte(`["hello"]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := port.Get("greeting")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `["hello"]` {
		t.Fatalf("round trip mangled value: %s", got)
	}

	// Set overwrites in place.
	if err := port.Set("greeting", []byte(`["goodbye"]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = port.Get("greeting")
	if string(got) != `["goodbye"]` {
		t.Fatalf("overwrite lost: %s", got)
	}

	if err := port.Delete("greeting"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := port.Get("greeting"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("deleted key still readable: %v", err)
	}

	// Deleting a missing key is not an error.
	if err := port.Delete("greeting"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestMemoryPort(t *testing.T) {
	testPort(t, storage.NewMemory())
}

func TestSQLitePort(t *testing.T) {
	db, err := storage.NewSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer db.Close()

	testPort(t, db)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.NewSQLite(dir)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	if err := db.Set("durable", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	db.Close()

	reopened, err := storage.NewSQLite(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("durable")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != `[1,2,3]` {
		t.Fatalf("value lost across reopen: %s", got)
	}
}
