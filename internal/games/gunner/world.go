package gunner

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-gunner/internal/config"
)

// World owns the whole simulation state. It is not safe for concurrent use;
// one goroutine drives Tick and reads Snapshot.
type World struct {
	cfg    config.GunnerConfig
	seed   int64
	rng    *RNG
	logger *log.Logger
	events eventQueue

	nextID       EntityID
	tick         uint64
	sessionStart uint64 // tick at the last StartGame

	state SessionState
	level Level

	player     *Player
	enemies    []*Enemy // id order
	boss       *Enemy
	bossActive bool
	bullets    []*Bullet
	powerUps   []*PowerUp
	explosions []*Explosion
	particles  []*Particle

	score           int
	currentLevel    int
	enemiesKilled   int // this level
	totalKills      int // this session
	comboCount      int
	comboTimer      float64
	comboMultiplier int

	enemyTimer   float64
	powerUpTimer float64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for session transitions.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates a world in the menu state. No player exists until
// StartGame.
func NewWorld(cfg config.GunnerConfig, seed int64, opts ...Option) *World {
	w := &World{
		cfg:             cfg,
		seed:            seed,
		rng:             NewRNG(seed),
		logger:          log.New(io.Discard),
		state:           StateMenu,
		currentLevel:    1,
		comboMultiplier: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.level = GenerateLevel(w.currentLevel)
	return w
}

// Tick advances the world by dt seconds and returns the events raised.
// It is a no-op outside the playing state or for a non-positive dt.
func (w *World) Tick(in Intent, dt float64) []Event {
	if w.state != StatePlaying || w.player == nil {
		return nil
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil
	}

	w.tick++

	w.applyIntent(in)
	w.integrate(dt)
	w.think(dt)
	w.resolveCombat(dt)
	if w.state == StatePlaying {
		w.spawn(dt)
	}
	w.progress()

	if debugAssertions {
		if err := w.Validate(); err != nil {
			panic(err)
		}
	}

	return w.events.drain()
}

// State returns the session state.
func (w *World) State() SessionState {
	return w.state
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// CurrentLevel returns the 1-based level index.
func (w *World) CurrentLevel() int {
	return w.currentLevel
}

// Ticks returns how many playing ticks have run since the world was created.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Config returns the tunables table the world was built with.
func (w *World) Config() config.GunnerConfig {
	return w.cfg
}

// Seed returns the seed the world's RNG started from.
func (w *World) Seed() int64 {
	return w.seed
}

// Summary describes the current session for run records.
type Summary struct {
	Seed  int64
	State SessionState
	Score int
	Level int
	Kills int
	Ticks uint64
}

// Summary returns the totals of the session in progress or just finished.
func (w *World) Summary() Summary {
	return Summary{
		Seed:  w.seed,
		State: w.state,
		Score: w.score,
		Level: w.currentLevel,
		Kills: w.totalKills,
		Ticks: w.tick - w.sessionStart,
	}
}

// Player returns a copy of the player, or nil before the session starts.
func (w *World) Player() *Player {
	if w.player == nil {
		return nil
	}
	p := *w.player
	return &p
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

// setState moves the session to s and logs the transition.
func (w *World) setState(s SessionState) {
	if w.state == s {
		return
	}
	w.logger.Debug("session transition", "from", w.state, "to", s, "level", w.currentLevel, "score", w.score)
	w.state = s
}
