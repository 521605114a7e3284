package gunner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/core"
	"github.com/vovakirdan/retro-gunner/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger is handed to every world the registry creates
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by worlds created through the registry.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts a World to the registry's fixed-step game interface:
// session keys (confirm, restart, pause) are handled here, everything else
// is passed to the world as an Intent.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset

	world   *World
	runtime core.RuntimeConfig
	cfg     config.GunnerConfig
	paused  bool
	events  []Event

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates the shooter at normal difficulty.
func New() *Game {
	return NewWithPreset(config.DifficultyNormal)
}

// NewWithPreset creates the shooter with a difficulty preset applied to
// the loaded table.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	g := &Game{id: "gunner", title: "Retro Gunner", preset: preset}
	if preset != config.DifficultyNormal {
		g.id = "gunner_" + string(preset)
		g.title = "Retro Gunner (" + string(preset) + ")"
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the tunables and builds a fresh world in the menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadGunner(configPath)
	if err != nil {
		logger.Warn("falling back to default tunables", "err", err)
		cfg = config.DefaultGunnerConfig()
	}
	config.ApplyGunnerPreset(&cfg, g.preset)
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.world = NewWorld(cfg, runtime.Seed, WithLogger(logger))
	g.paused = false
	g.events = nil
}

// Resize updates the screen dimensions without touching the world.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Step advances one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	w := g.world
	switch w.State() {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			w.StartGame()
		}
	case StateLevelComplete:
		if in.Has(core.ActionConfirm) {
			w.NextLevel()
		}
	case StateGameOver, StateVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			w.Restart()
		}
		return core.StepResult{State: g.State()}
	case StatePlaying:
		if in.Has(core.ActionRestart) && g.paused {
			w.Restart()
			g.paused = false
			return core.StepResult{State: g.State()}
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.events = w.Tick(IntentFromFrame(in), g.runtime.TickDelta())
	return core.StepResult{State: g.State(), Events: len(g.events)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.State()
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.CurrentLevel(),
		GameOver: s == StateGameOver || s == StateVictory,
		Paused:   g.paused,
	}
}

// Events returns the events raised by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// World exposes the underlying simulation, for run records and tests.
func (g *Game) World() *World {
	return g.world
}

// Register the difficulty variants with the registry
func init() {
	registry.Register("gunner", func() registry.Game {
		return New()
	})
	registry.Register("gunner_easy", func() registry.Game {
		return NewWithPreset(config.DifficultyEasy)
	})
	registry.Register("gunner_hard", func() registry.Game {
		return NewWithPreset(config.DifficultyHard)
	})
}
