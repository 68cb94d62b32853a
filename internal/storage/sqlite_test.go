package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/gt4500/internal/bridge"
	"github.com/vovakirdan/gt4500/internal/config"
	"github.com/vovakirdan/gt4500/internal/core"
	_ "github.com/vovakirdan/gt4500/internal/ships/gt4500"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	firedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	id, err := store.SaveSalvo(SalvoEntry{
		SessionID:    "s1",
		Class:        "gt4500",
		Mode:         core.FiringModeAll,
		PrimaryFired: true,
		Success:      true,
		PrimaryLeft:  9,
		FiredAt:      firedAt,
	})
	if err != nil {
		t.Fatalf("SaveSalvo() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	entries, err := store.SessionSalvos("s1")
	if err != nil {
		t.Fatalf("SessionSalvos() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 salvo, got %d", len(entries))
	}

	e := entries[0]
	if e.Mode != core.FiringModeAll {
		t.Errorf("Expected mode all, got %v", e.Mode)
	}
	if !e.PrimaryFired || e.SecondaryFired || !e.Success {
		t.Errorf("Flags not round-tripped: %+v", e)
	}
	if e.PrimaryLeft != 9 || e.SecondaryLeft != 0 {
		t.Errorf("Expected 9/0 left, got %d/%d", e.PrimaryLeft, e.SecondaryLeft)
	}
	if !e.FiredAt.Equal(firedAt) {
		t.Errorf("Expected fired_at %v, got %v", firedAt, e.FiredAt)
	}
}

func TestStoreRecentSalvosNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSalvo(SalvoEntry{SessionID: "s", Class: "gt4500", PrimaryLeft: i}); err != nil {
			t.Fatalf("SaveSalvo() failed: %v", err)
		}
	}

	entries, err := store.RecentSalvos(3)
	if err != nil {
		t.Fatalf("RecentSalvos() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 salvos with limit, got %d", len(entries))
	}
	if entries[0].PrimaryLeft != 4 || entries[2].PrimaryLeft != 2 {
		t.Errorf("Salvos not newest first: %+v", entries)
	}
}

func TestStoreSessionSalvosFiltersSession(t *testing.T) {
	store := openTestStore(t)

	store.SaveSalvo(SalvoEntry{SessionID: "a", Class: "gt4500"})
	store.SaveSalvo(SalvoEntry{SessionID: "b", Class: "gt4500"})
	store.SaveSalvo(SalvoEntry{SessionID: "a", Class: "gt4500"})

	entries, err := store.SessionSalvos("a")
	if err != nil {
		t.Fatalf("SessionSalvos() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 salvos for session a, got %d", len(entries))
	}
}

func TestStoreClassStats(t *testing.T) {
	store := openTestStore(t)

	// No salvos yet
	stats, err := store.GetClassStats("gt4500")
	if err != nil {
		t.Fatalf("GetClassStats() failed: %v", err)
	}
	if stats.Salvos != 0 || !stats.LastFired.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveSalvo(SalvoEntry{SessionID: "a", Class: "gt4500", PrimaryFired: true, Success: true})
	store.SaveSalvo(SalvoEntry{SessionID: "a", Class: "gt4500", PrimaryFired: true, SecondaryFired: true, Success: true})
	store.SaveSalvo(SalvoEntry{SessionID: "b", Class: "gt4500"})
	store.SaveSalvo(SalvoEntry{SessionID: "c", Class: "other"})

	stats, err = store.GetClassStats("gt4500")
	if err != nil {
		t.Fatalf("GetClassStats() failed: %v", err)
	}
	if stats.Salvos != 3 || stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Expected 3 salvos / 2 hits / 1 miss, got %+v", stats)
	}
	if stats.PrimaryLaunches != 2 || stats.SecondaryLaunches != 1 {
		t.Errorf("Expected 2/1 launches, got %d/%d", stats.PrimaryLaunches, stats.SecondaryLaunches)
	}
	if stats.Sessions != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.Sessions)
	}
	if stats.LastFired.IsZero() {
		t.Error("Expected LastFired to be set")
	}
}

func TestStoreClearSalvos(t *testing.T) {
	store := openTestStore(t)

	store.SaveSalvo(SalvoEntry{SessionID: "a", Class: "gt4500"})
	store.SaveSalvo(SalvoEntry{SessionID: "a", Class: "other"})

	if err := store.ClearSalvos("gt4500"); err != nil {
		t.Fatalf("ClearSalvos() failed: %v", err)
	}

	entries, _ := store.RecentSalvos(10)
	if len(entries) != 1 || entries[0].Class != "other" {
		t.Errorf("Only other-class salvos should remain, got %+v", entries)
	}
}

func TestStoreRecordsBridgeSalvos(t *testing.T) {
	store := openTestStore(t)

	cfg := config.DefaultShipConfig()
	cfg.Primary.Torpedoes = 1
	cfg.Secondary.Torpedoes = 1
	cfg.Seed = 1

	b, err := bridge.New(cfg, bridge.WithRecorder(store))
	if err != nil {
		t.Fatalf("bridge.New() failed: %v", err)
	}
	b.Fire(core.FiringModeSingle)
	b.Fire(core.FiringModeSingle)
	b.Fire(core.FiringModeSingle)

	entries, err := store.SessionSalvos(b.SessionID())
	if err != nil {
		t.Fatalf("SessionSalvos() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 recorded salvos, got %d", len(entries))
	}
	if !entries[0].PrimaryFired || !entries[1].SecondaryFired {
		t.Errorf("Expected primary then secondary, got %+v", entries[:2])
	}
	if entries[2].Success || entries[2].PrimaryFired || entries[2].SecondaryFired {
		t.Errorf("Expected final dry salvo to fire nothing, got %+v", entries[2])
	}
}
