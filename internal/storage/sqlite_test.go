package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	win := SessionRecord{
		Player:      "ace",
		Score:       3675000,
		TimeBonus:   675000,
		Won:         true,
		Ticks:       1001,
		LivesLeft:   3,
		EnemyHealth: 0,
		Difficulty:  "normal",
	}
	id, err := store.SaveSession(win)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected a positive ID, got %d", id)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 session, got %d", len(recent))
	}

	got := recent[0]
	if got.ID != id || got.Player != "ace" || got.Score != 3675000 || got.TimeBonus != 675000 {
		t.Errorf("unexpected record: %+v", got)
	}
	if !got.Won || got.Ticks != 1001 || got.LivesLeft != 3 || got.Difficulty != "normal" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreRecentOrder(t *testing.T) {
	store := openTestStore(t)

	for i, name := range []string{"first", "second", "third"} {
		if _, err := store.SaveSession(SessionRecord{Player: name, Score: i * 100}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions with limit, got %d", len(recent))
	}
	if recent[0].Player != "third" || recent[1].Player != "second" {
		t.Errorf("unexpected order: %s, %s", recent[0].Player, recent[1].Player)
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 sessions
	for i := 0; i < 5; i++ {
		store.SaveSession(SessionRecord{Player: "p", Score: (i + 1) * 100})
	}

	// Request only top 3
	top, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(top))
	}

	// Should be 500, 400, 300 (top 3)
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Sessions not in expected order: %v", top)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	store.SaveSession(SessionRecord{Player: "a", Score: 100})
	store.SaveSession(SessionRecord{Player: "b", Score: 300, Won: true})
	store.SaveSession(SessionRecord{Player: "c", Score: 200})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, expected 3", stats.Games)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", stats.Wins)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, expected 300", stats.BestScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{Player: "a", Score: 100})
	store.SaveSession(SessionRecord{Player: "b", Score: 200})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, _ := store.RecentSessions(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(recent))
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	// Nested directories are created on open
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
