package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-gunner/internal/core"
	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
	"github.com/vovakirdan/retro-gunner/internal/registry"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

type recordingSink struct {
	events []gunner.Event
}

func (s *recordingSink) Handle(events []gunner.Event) {
	s.events = append(s.events, events...)
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	game, err := registry.Create("gunner")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 11}, opts)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

func TestModelStartsAndShoots(t *testing.T) {
	sink := &recordingSink{}
	m := newTestModel(t, Options{Sink: sink, NoColor: true})

	if !strings.Contains(m.View(), "RETRO GUNNER") {
		t.Fatal("menu not shown")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tick())
	if m.gameState.Level != 1 || m.gameState.GameOver {
		t.Fatalf("state after confirm = %+v", m.gameState)
	}

	m = send(t, m, runeKey('j'), tick())
	if gunner.CountEvents(sink.events, gunner.EventShoot) == 0 {
		t.Error("sink did not receive the shot")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD missing from view")
	}
}

func TestModelRecordsRunOnQuit(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, Options{Store: store})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tick(), tick(), tick())
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not cleared on quit")
	}

	runs, err := store.RecentRuns("gunner", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	r := runs[0]
	if r.Source != SourceTUI || r.Outcome != string(gunner.StatePlaying) || r.Seed != 11 {
		t.Errorf("run = %+v", r)
	}
	if r.Ticks != 3 {
		t.Errorf("Ticks = %d, want 3", r.Ticks)
	}

	// Nothing positive to save as a score
	if scores, _ := store.TopScores("gunner", 10); len(scores) != 0 {
		t.Errorf("scores = %v, want none", scores)
	}
}

func TestModelSkipsMenuOnlySessions(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, Options{Store: store})

	m = send(t, m, tick(), tick())
	m.Update(runeKey('q'))

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("recorded %d runs for a session that never started", len(runs))
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, Options{NoColor: true})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tick())

	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window not reported")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, tick())
	if m.gameState.Level != 1 {
		t.Errorf("resize reset the session: %+v", m.gameState)
	}
	if got := len(strings.Split(m.View(), "\n")); got != 30 {
		t.Errorf("view has %d rows, want 30", got)
	}
}

func TestModelRecordsRunAbandonedFromPause(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, Options{Store: store})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tick(), tick())
	m = send(t, m, runeKey('p'), tick())
	if !m.gameState.Paused {
		t.Fatalf("state after pause = %+v", m.gameState)
	}

	m.started = time.Now().Add(-time.Hour)
	m = send(t, m, runeKey('r'), tick())

	runs, err := store.RecentRuns("gunner", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if r := runs[0]; r.Outcome != string(gunner.StatePlaying) || r.Ticks != 2 {
		t.Errorf("abandoned run = %+v", r)
	}
	if m.runSaved {
		t.Error("fresh session already marked as saved")
	}
	if time.Since(m.started) > time.Minute {
		t.Error("session clock not reset on restart")
	}

	// The new session is recorded on its own
	m = send(t, m, tick(), tick(), tick())
	m.Update(runeKey('q'))

	runs, err = store.RecentRuns("gunner", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	ticks := map[uint64]bool{runs[0].Ticks: true, runs[1].Ticks: true}
	if !ticks[2] || !ticks[3] {
		t.Errorf("run ticks = %v, want 2 and 3", ticks)
	}
}
