package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

	saves := []struct {
		game  string
		score int
	}{
		{"gunner", 100},
		{"gunner", 50},
		{"gunner", 200},
		{"gunner_hard", 500},
	}
	for _, sv := range saves {
		if _, err := store.SaveScore(sv.game, sv.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Retrieve top scores for gunner
	scores, err := store.TopScores("gunner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for hard
	hardScores, err := store.TopScores("gunner_hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hardScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("gunner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("gunner", 100)
	store.SaveScore("gunner", 300)
	store.SaveScore("gunner", 200)

	high, err = store.HighScore("gunner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("gunner", 100)
	store.SaveScore("gunner", 200)
	store.SaveScore("gunner_hard", 300)

	// Clear only gunner scores
	if err := store.ClearScores("gunner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Gunner should be empty
	gunnerScores, _ := store.TopScores("gunner", 10)
	if len(gunnerScores) != 0 {
		t.Errorf("Expected 0 gunner scores after clear, got %d", len(gunnerScores))
	}

	// Hard should still have scores
	hardScores, _ := store.TopScores("gunner_hard", 10)
	if len(hardScores) != 1 {
		t.Errorf("Hard scores should not be affected by clearing gunner")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
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

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{
		GameID:   "gunner",
		Seed:     42,
		Score:    1800,
		Level:    3,
		Kills:    21,
		Ticks:    7200,
		Outcome:  "game_over",
		Source:   "sim",
		Duration: 2 * time.Minute,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("SaveRun() returned non-uuid id %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Score != 1800 || got.Level != 3 || got.Kills != 21 || got.Ticks != 7200 {
		t.Errorf("run fields not round-tripped: %+v", got)
	}
	if got.Seed != 42 || got.Outcome != "game_over" || got.Source != "sim" {
		t.Errorf("run metadata not round-tripped: %+v", got)
	}
	if got.Duration != 2*time.Minute {
		t.Errorf("Duration = %v, want 2m", got.Duration)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	id, err := store.SaveRun(RunRecord{ID: want, GameID: "gunner", Outcome: "victory"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("id = %q, want %q", id, want)
	}

	// Same id twice violates the primary key
	if _, err := store.SaveRun(RunRecord{ID: want, GameID: "gunner", Outcome: "victory"}); err == nil {
		t.Error("duplicate run id should fail")
	}

	if _, err := store.SaveRun(RunRecord{ID: "not-a-uuid", GameID: "gunner"}); err == nil {
		t.Error("malformed run id should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil for unknown run, got %+v", run)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{GameID: "gunner", Score: i * 100, Outcome: "game_over"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(RunRecord{GameID: "gunner_hard", Score: 50, Outcome: "game_over"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("gunner", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 400 || runs[2].Score != 200 {
		t.Errorf("runs not newest first: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 runs across games, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("gunner", 100)
	store.SaveScore("gunner", 300)
	store.SaveRun(RunRecord{GameID: "gunner", Level: 4, Outcome: "game_over"})
	store.SaveRun(RunRecord{GameID: "gunner", Level: 9, Outcome: "victory"})

	stats, err := store.GetGameStats("gunner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected score stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestLevel != 9 || stats.Victories != 1 {
		t.Errorf("unexpected run stats: %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["gunner"] == nil || all["gunner"].HighScore != 300 {
		t.Errorf("missing gunner stats: %+v", all)
	}

	if err := store.ClearScores("gunner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	runs, _ := store.RecentRuns("gunner", 10)
	if len(runs) != 0 {
		t.Errorf("Expected runs cleared with scores, got %d", len(runs))
	}
}
