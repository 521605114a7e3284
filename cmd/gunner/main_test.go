package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

func TestVariantID(t *testing.T) {
	tests := []struct {
		args       []string
		difficulty string
		want       string
		wantErr    bool
	}{
		{nil, "", "gunner", false},
		{nil, "normal", "gunner", false},
		{nil, "Easy", "gunner_easy", false},
		{nil, "hard", "gunner_hard", false},
		{nil, "nightmare", "", true},
		{[]string{"gunner_hard"}, "", "gunner_hard", false},
		{[]string{"gunner"}, "easy", "", true},
	}

	for _, tt := range tests {
		got, err := variantID(tt.args, tt.difficulty)
		if (err != nil) != tt.wantErr {
			t.Errorf("variantID(%v, %q) error = %v, wantErr %v", tt.args, tt.difficulty, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("variantID(%v, %q) = %q, want %q", tt.args, tt.difficulty, got, tt.want)
		}
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultGunnerConfig()

	var hashes []uint64
	a, err := simulate(cfg, 99, 3000, 1.0/60, 500, func(_ int, h uint64) { hashes = append(hashes, h) })
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	b, err := simulate(cfg, 99, 3000, 1.0/60, 0, nil)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
	if a.Summary.Seed != 99 || a.Summary.Ticks == 0 {
		t.Errorf("summary = %+v", a.Summary)
	}
	if a.Summary.State == gunner.StateMenu || a.Summary.State == gunner.StateLevelComplete {
		t.Errorf("sim ended in %s", a.Summary.State)
	}
	if want := int(a.Summary.Ticks) / 500; len(hashes) < want {
		t.Errorf("got %d hashes, want at least %d", len(hashes), want)
	}
}

func TestLoadScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, score := range []int{300, 100, 500} {
		if _, err := store.SaveScore("gunner", score); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}

	top, err := loadScores(store, "gunner", false, 2)
	if err != nil {
		t.Fatalf("loadScores() error = %v", err)
	}
	if len(top) != 2 || top[0].Score != 500 {
		t.Errorf("top scores = %+v, want 2 led by 500", top)
	}

	all, err := loadScores(store, "gunner", true, 2)
	if err != nil {
		t.Fatalf("loadScores(all) error = %v", err)
	}
	if len(all) != 3 || all[2].Score != 100 {
		t.Errorf("all scores = %+v, want 3 ending with 100", all)
	}
}
