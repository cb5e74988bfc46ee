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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	score, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for an empty database, got %d", score)
	}

	if err := store.SaveHighScore(120); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	score, err = store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 120 {
		t.Errorf("Expected 120, got %d", score)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{50, 200, 70} {
		if err := store.SaveHighScore(s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}

	score, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 200 {
		t.Errorf("Expected best 200, got %d", score)
	}
}

func TestHighScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	score, err := reopened.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 90 {
		t.Errorf("Expected 90 after reopen, got %d", score)
	}
}

func TestResetHighScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveHighScore(40); err != nil {
		t.Fatal(err)
	}
	if err := store.ResetHighScore(); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	score, err := store.LoadHighScore()
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 {
		t.Errorf("Expected 0 after reset, got %d", score)
	}
}

func TestRecordAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 10} {
		if err := store.RecordScore(s); err != nil {
			t.Fatalf("RecordScore(%d) failed: %v", s, err)
		}
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.BestScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, s := range []int{10, 30} {
		if err := store.RecordScore(s); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.BestScore != 30 {
		t.Errorf("BestScore = %d, expected 30", stats.BestScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, expected 40", stats.TotalScore)
	}

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}
