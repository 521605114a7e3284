package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-gunner/internal/core"
	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
	"github.com/vovakirdan/retro-gunner/internal/registry"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

// EventSink consumes the events raised by each tick, e.g. the sound manager.
type EventSink interface {
	Handle(events []gunner.Event)
}

// Options configures a Model beyond the game and runtime config.
type Options struct {
	Store   *storage.Store // nil disables score and run saving
	Sink    EventSink      // nil drops events
	Logger  *log.Logger
	Source  string   // run source, SourceTUI when empty
	Palette *Palette // nil uses the default renderer
	NoColor bool
}

// eventSource is implemented by games that expose per-tick events.
type eventSource interface {
	Events() []gunner.Event
}

// worldSource is implemented by games backed by a gunner world.
type worldSource interface {
	World() *gunner.World
}

// resizer is implemented by games that adapt to a new screen size in place.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for one shooter session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	keys      *KeyMapper
	input     *heldInput
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	gameState core.GameState
	started   time.Time
	quitting  bool
	runSaved  bool // whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Source == "" {
		opts.Source = SourceTUI
	}
	if opts.Palette == nil {
		opts.Palette = defaultPalette
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		input:   newHeldInput(),
		config:  cfg,
		opts:    opts,
		logger:  logger,
		started: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	before, tracked := m.summary()

	result := m.game.Step(m.input.Frame())
	m.gameState = result.State
	m.input.Advance()

	if src, ok := m.game.(eventSource); ok && m.opts.Sink != nil {
		if events := src.Events(); len(events) > 0 {
			m.opts.Sink.Handle(events)
		}
	}

	after, _ := m.summary()
	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.recordRun()
	case wasOver && !m.gameState.GameOver:
		m.newSession()
	case tracked && after.Ticks < before.Ticks:
		// Restarted from the pause menu; the abandoned run is still recorded
		m.saveRun(before)
		m.newSession()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) newSession() {
	m.runSaved = false
	m.started = time.Now()
	m.input.Reset()
}

func (m *Model) summary() (gunner.Summary, bool) {
	ws, ok := m.game.(worldSource)
	if !ok || ws.World() == nil {
		return gunner.Summary{}, false
	}
	return ws.World().Summary(), true
}

// recordRun saves the current session once.
func (m *Model) recordRun() {
	if sum, ok := m.summary(); ok {
		m.saveRun(sum)
	}
}

// saveRun records sum unless the session was already saved. Sessions that
// never left the menu are not recorded.
func (m *Model) saveRun(sum gunner.Summary) {
	if m.runSaved || m.opts.Store == nil {
		return
	}
	if sum.State == gunner.StateMenu || sum.Ticks == 0 {
		return
	}
	m.runSaved = true

	rec := NewRunRecord(m.game.ID(), m.opts.Source, sum, time.Since(m.started))
	id, err := RecordRun(m.opts.Store, rec)
	if err != nil {
		m.logger.Error("failed to record run", "err", err)
		return
	}
	m.logger.Info("run recorded", "id", id, "score", sum.Score, "level", sum.Level, "outcome", sum.State)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".retro-gunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.opts.NoColor {
		return m.screen.String()
	}
	return m.opts.Palette.Render(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}
	return nil
}
