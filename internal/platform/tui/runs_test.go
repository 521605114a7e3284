package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
)

func TestNewRunRecord(t *testing.T) {
	sum := gunner.Summary{Seed: 5, State: gunner.StateVictory, Score: 4200, Level: 9, Kills: 96, Ticks: 36000}
	rec := NewRunRecord("gunner_hard", SourceSim, sum, 10*time.Minute)

	if rec.ID != "" {
		t.Errorf("ID = %q, want empty until saved", rec.ID)
	}
	if rec.GameID != "gunner_hard" || rec.Source != SourceSim || rec.Outcome != "victory" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Seed != 5 || rec.Score != 4200 || rec.Level != 9 || rec.Kills != 96 || rec.Ticks != 36000 {
		t.Errorf("totals not copied: %+v", rec)
	}
	if rec.Duration != 10*time.Minute {
		t.Errorf("Duration = %v", rec.Duration)
	}
}

func TestRecordRun(t *testing.T) {
	store := openTestStore(t)

	id, err := RecordRun(store, NewRunRecord("gunner", SourceSSH, gunner.Summary{State: gunner.StateGameOver, Score: 700, Level: 2}, time.Minute))
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil || run == nil {
		t.Fatalf("RunByID(%q) = %v, %v", id, run, err)
	}
	if high, _ := store.HighScore("gunner"); high != 700 {
		t.Errorf("HighScore = %d, want 700", high)
	}

	// Zero-score runs are recorded without a score entry
	if _, err := RecordRun(store, NewRunRecord("gunner", SourceSSH, gunner.Summary{State: gunner.StateGameOver}, time.Second)); err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	scores, _ := store.TopScores("gunner", 10)
	if len(scores) != 1 {
		t.Errorf("len(scores) = %d, want 1", len(scores))
	}
	runs, _ := store.RecentRuns("gunner", 10)
	if len(runs) != 2 {
		t.Errorf("len(runs) = %d, want 2", len(runs))
	}
}
