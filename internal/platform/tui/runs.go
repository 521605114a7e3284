package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

// Run sources recorded with each run.
const (
	SourceTUI = "tui"
	SourceSSH = "ssh"
	SourceSim = "sim"
)

// NewRunRecord builds the record of a session from its summary.
func NewRunRecord(gameID, source string, s gunner.Summary, elapsed time.Duration) storage.RunRecord {
	return storage.RunRecord{
		GameID:   gameID,
		Seed:     s.Seed,
		Score:    s.Score,
		Level:    s.Level,
		Kills:    s.Kills,
		Ticks:    s.Ticks,
		Outcome:  string(s.State),
		Source:   source,
		Duration: elapsed,
	}
}

// RecordRun saves a session: its score when positive, then the run itself.
// Returns the run id.
func RecordRun(store *storage.Store, rec storage.RunRecord) (string, error) {
	if rec.Score > 0 {
		if _, err := store.SaveScore(rec.GameID, rec.Score); err != nil {
			return "", fmt.Errorf("tui: save score: %w", err)
		}
	}
	id, err := store.SaveRun(rec)
	if err != nil {
		return "", fmt.Errorf("tui: save run: %w", err)
	}
	return id, nil
}
