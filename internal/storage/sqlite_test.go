package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "local", Device: "desktop", Score: 100, Duration: 30 * time.Second},
		{Player: "local", Device: "desktop", Score: 50},
		{Player: "alice", Device: "mobile", Score: 200, Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Player != "alice" || top[0].Device != "mobile" {
		t.Errorf("Unexpected best run: %+v", top[0])
	}
	if top[0].Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", top[0].Duration)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Player: "local", Device: "desktop", Score: (i + 1) * 100})
	}

	// Request only top 3
	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}

	// Should be 500, 400, 300 (top 3)
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreKeyedHighScore(t *testing.T) {
	store := openTestStore(t)
	const key = "chillguyHighScore"

	// Nothing stored yet
	high, err := store.HighScore(key)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", high)
	}

	tests := []struct {
		score   int
		changed bool
		want    int
	}{
		{120, true, 120},
		{80, false, 120},
		{120, false, 120},
		{300, true, 300},
	}
	for _, tt := range tests {
		changed, err := store.SetHighScore(key, tt.score)
		if err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", tt.score, err)
		}
		if changed != tt.changed {
			t.Errorf("SetHighScore(%d) changed = %v, want %v", tt.score, changed, tt.changed)
		}
		high, _ := store.HighScore(key)
		if high != tt.want {
			t.Errorf("after SetHighScore(%d) high = %d, want %d", tt.score, high, tt.want)
		}
	}

	// Keys are independent
	if other, _ := store.HighScore("otherKey"); other != 0 {
		t.Errorf("Expected other key to be empty, got %d", other)
	}
}

func TestStoreRejectsNegativeHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SetHighScore("k", -1); err == nil {
		t.Error("Expected error for negative high score")
	}
}

func TestStoreClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "local", Device: "desktop", Score: 100})
	store.SetHighScore("chillguyHighScore", 100)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
	if high, _ := store.HighScore("chillguyHighScore"); high != 100 {
		t.Errorf("High score should survive clearing runs, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.Best != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, score := range []int{10, 20, 60} {
		store.SaveRun(Run{Player: "local", Device: "desktop", Score: score})
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Best != 60 || stats.TotalScore != 90 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 30 {
		t.Errorf("Expected average 30, got %v", stats.AvgScore)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
