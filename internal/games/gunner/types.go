// Package gunner implements the deterministic simulation core of a
// side-scrolling arcade shooter: player, four enemy archetypes, a two-phase
// boss, bullets, power-ups, scoring and level progression.
//
// The world advances in fixed-order ticks (input, physics, AI, combat,
// spawner, progression). Presentation and audio adapters read a Snapshot and
// the events returned by Tick; they never mutate the world.
package gunner

import (
	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/core"
)

// EntityID identifies an actor for its whole life. IDs are never reused
// within a world, so they are safe removal keys.
type EntityID uint64

// NoEntity is the zero id, never assigned.
const NoEntity EntityID = 0

// SessionState is the progression state of a world.
type SessionState string

const (
	StateMenu          SessionState = "menu"
	StatePlaying       SessionState = "playing"
	StateGameOver      SessionState = "game_over"
	StateLevelComplete SessionState = "level_complete"
	StateVictory       SessionState = "victory"
)

// Weapon tags a player weapon and the bullets it fires.
type Weapon string

const (
	WeaponBasic      Weapon = config.WeaponBasic
	WeaponMachineGun Weapon = config.WeaponMachineGun
	WeaponSpreadGun  Weapon = config.WeaponSpreadGun
	WeaponLaser      Weapon = config.WeaponLaser
)

// PowerUpKind is the effect of a pickup.
type PowerUpKind string

const (
	PowerUpMachineGun PowerUpKind = "weapon_machine_gun"
	PowerUpSpreadGun  PowerUpKind = "weapon_spread_gun"
	PowerUpLaser      PowerUpKind = "weapon_laser"
	PowerUpExtraLife  PowerUpKind = "extra_life"
	PowerUpShield     PowerUpKind = "shield"
)

// PowerUpKinds lists every pickup the spawner can roll, in roll order.
var PowerUpKinds = []PowerUpKind{
	PowerUpMachineGun,
	PowerUpSpreadGun,
	PowerUpLaser,
	PowerUpExtraLife,
	PowerUpShield,
}

// EnemyKind names an enemy archetype.
type EnemyKind string

const (
	KindSoldier EnemyKind = "soldier"
	KindFlying  EnemyKind = "flying"
	KindTurret  EnemyKind = "turret"
	KindRunner  EnemyKind = "runner"
	KindBoss    EnemyKind = "boss"
)

// SpawnableKinds lists the archetypes the spawner picks from, in roll order.
var SpawnableKinds = []EnemyKind{KindSoldier, KindFlying, KindTurret, KindRunner}

// Player is the single controllable actor.
type Player struct {
	ID             EntityID
	Pos            core.Vec2
	Vel            core.Vec2
	Health         int
	MaxHealth      int
	Weapon         Weapon
	FacingRight    bool
	OnGround       bool
	IsJumping      bool
	ShootCooldown  float64
	HasShield      bool
	ShieldDuration float64
}

// Enemy carries the fields every archetype shares. Archetype-specific state
// lives in Brain.
type Enemy struct {
	ID            EntityID
	Pos           core.Vec2
	Vel           core.Vec2
	Health        int
	MaxHealth     int
	FacingRight   bool
	Grounded      bool
	ShootCooldown float64
	Brain         Brain
}

// Kind returns the archetype of e.
func (e *Enemy) Kind() EnemyKind {
	switch e.Brain.(type) {
	case *SoldierBrain:
		return KindSoldier
	case *FlyingBrain:
		return KindFlying
	case *TurretBrain:
		return KindTurret
	case *RunnerBrain:
		return KindRunner
	case *BossBrain:
		return KindBoss
	default:
		panic("gunner: enemy without brain")
	}
}

// AIState returns the small state label of the enemy's brain.
func (e *Enemy) AIState() string {
	return e.Brain.Label()
}

// Airborne reports whether the archetype ignores gravity and platforms.
func (e *Enemy) Airborne() bool {
	switch e.Brain.(type) {
	case *FlyingBrain, *TurretBrain:
		return true
	default:
		return false
	}
}

func (e *Enemy) clone() *Enemy {
	c := *e
	c.Brain = e.Brain.cloneBrain()
	return &c
}

// Brain is the closed set of archetype state machines.
type Brain interface {
	// Label is the state name shown to presentation, e.g. "patrol".
	Label() string
	cloneBrain() Brain
}

// SoldierBrain patrols and stops to fire straight shots.
type SoldierBrain struct {
	Attacking   bool
	PatrolStart float64
	PatrolEnd   float64
}

func (b *SoldierBrain) Label() string {
	if b.Attacking {
		return "attack"
	}
	return "patrol"
}

func (b *SoldierBrain) cloneBrain() Brain { c := *b; return &c }

// FlyingBrain hovers on a sine wave and dives at the player.
type FlyingBrain struct {
	HoverOffset float64
	HoverSpeed  float64
	Diving      bool
}

func (b *FlyingBrain) Label() string {
	if b.Diving {
		return "dive"
	}
	return "hover"
}

func (b *FlyingBrain) cloneBrain() Brain { c := *b; return &c }

// TurretBrain never moves and fires aimed shots.
type TurretBrain struct{}

func (b *TurretBrain) Label() string { return "shoot" }

func (b *TurretBrain) cloneBrain() Brain { return &TurretBrain{} }

// RunnerBrain patrols until the player is close, then charges for good.
type RunnerBrain struct {
	Charging    bool
	PatrolStart float64
	PatrolEnd   float64
}

func (b *RunnerBrain) Label() string {
	if b.Charging {
		return "charge"
	}
	return "patrol"
}

func (b *RunnerBrain) cloneBrain() Brain { c := *b; return &c }

// BossBrain switches phase on the current health ratio every tick.
type BossBrain struct {
	Phase        int
	JumpCooldown float64
	PatrolStart  float64
	PatrolEnd    float64
}

func (b *BossBrain) Label() string {
	if b.Phase == 2 {
		return "phase2"
	}
	return "phase1"
}

func (b *BossBrain) cloneBrain() Brain { c := *b; return &c }

// Bullet is a projectile. Owner only classifies friend or foe; the shooter
// may already be gone.
type Bullet struct {
	ID     EntityID
	Pos    core.Vec2
	Vel    core.Vec2
	Weapon Weapon
	Owner  EntityID
	Damage int
}

// PowerUp is a stationary pickup.
type PowerUp struct {
	ID        EntityID
	Pos       core.Vec2
	Kind      PowerUpKind
	Collected bool
}

// Explosion is a visual-only burst that grows and fades.
type Explosion struct {
	ID   EntityID
	Pos  core.Vec2
	Size float64
	Life float64
}

// Particle is a visual-only spark.
type Particle struct {
	ID   EntityID
	Pos  core.Vec2
	Vel  core.Vec2
	Life float64
}
