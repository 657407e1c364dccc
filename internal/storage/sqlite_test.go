package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, run := range []struct {
		mode  string
		score int
	}{
		{"classic", 100},
		{"classic", 50},
		{"classic", 200},
		{"obstacles", 500},
	} {
		if _, err := store.SaveRun(run.mode, "alice", run.score, 2); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Runs not in descending order: %v", scores)
	}
	if scores[0].Player != "alice" || scores[0].MaxCombo != 2 {
		t.Errorf("Run fields not persisted: %+v", scores[0])
	}

	obstacles, err := store.TopRuns("obstacles", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(obstacles) != 1 {
		t.Errorf("Expected 1 obstacles run, got %d", len(obstacles))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun("classic", "p", (i+1)*100, 1)
	}

	scores, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveRun("classic", "p", 100, 1)
	store.SaveRun("classic", "p", 300, 3)
	store.SaveRun("classic", "p", 200, 2)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("classic", "p", 100, 1)
	store.SaveRun("classic", "p", 200, 2)
	store.SaveRun("obstacles", "p", 300, 3)

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.TopRuns("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}

	obstacles, _ := store.TopRuns("obstacles", 10)
	if len(obstacles) != 1 {
		t.Error("Obstacles runs should not be affected by clearing classic")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 30; i++ {
		store.SaveRun("classic", "p", i*10, 1)
	}

	recent, err := store.RecentRuns(20)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(recent))
	}
	// Same-second inserts fall back to id ordering, newest first.
	if recent[0].Score != 290 {
		t.Errorf("Expected the newest run first, got score %d", recent[0].Score)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("classic", "p", 100, 2)
	store.SaveRun("classic", "p", 300, 4)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, expected 2", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.BestCombo != 4 {
		t.Errorf("BestCombo = %d, expected 4", stats.BestCombo)
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
