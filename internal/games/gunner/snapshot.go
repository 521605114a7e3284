package gunner

import "math"

// Snapshot is a deep, read-only copy of the world for presentation,
// persistence and determinism checks. Mutating it never affects the world.
type Snapshot struct {
	Tick            uint64
	State           SessionState
	Level           int
	Score           int
	EnemiesKilled   int
	TotalKills      int
	RequiredKills   int
	ComboCount      int
	ComboTimer      float64
	ComboMultiplier int
	BossActive      bool

	Player     *Player
	Enemies    []Enemy
	Boss       *Enemy
	Bullets    []Bullet
	PowerUps   []PowerUp
	Explosions []Explosion
	Particles  []Particle
	Platforms  []Platform

	EnemyTimer   float64
	PowerUpTimer float64

	// RNG state for the spawner
	RNGState uint64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            w.tick,
		State:           w.state,
		Level:           w.currentLevel,
		Score:           w.score,
		EnemiesKilled:   w.enemiesKilled,
		TotalKills:      w.totalKills,
		RequiredKills:   w.RequiredKills(),
		ComboCount:      w.comboCount,
		ComboTimer:      w.comboTimer,
		ComboMultiplier: w.comboMultiplier,
		BossActive:      w.bossActive,
		Player:          w.Player(),
		Enemies:         make([]Enemy, len(w.enemies)),
		Bullets:         copyAll(w.bullets),
		PowerUps:        copyAll(w.powerUps),
		Explosions:      copyAll(w.explosions),
		Particles:       copyAll(w.particles),
		Platforms:       append([]Platform(nil), w.level.Platforms...),
		EnemyTimer:      w.enemyTimer,
		PowerUpTimer:    w.powerUpTimer,
		RNGState:        w.rng.State(),
	}
	for i, e := range w.enemies {
		snap.Enemies[i] = *e.clone()
	}
	if w.boss != nil {
		snap.Boss = w.boss.clone()
	}
	return snap
}

func copyAll[T any](src []*T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = *v
	}
	return out
}

// AllEnemies returns the regular enemies followed by the boss, if any.
func (snap *Snapshot) AllEnemies() []Enemy {
	if snap.Boss == nil {
		return snap.Enemies
	}
	return append(append([]Enemy(nil), snap.Enemies...), *snap.Boss)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mixInt := func(v int) { h = h*31 + uint64(v) } //#nosec G115 -- hash computation
	mixF := func(v float64) { h = h*31 + math.Float64bits(v) }
	mixB := func(v bool) {
		if v {
			mixInt(1)
		} else {
			mixInt(0)
		}
	}
	mixS := func(s string) {
		for _, r := range s {
			mixInt(int(r))
		}
		mixInt(len(s))
	}

	mixS(string(snap.State))
	mixInt(snap.Level)
	mixInt(snap.Score)
	mixInt(snap.EnemiesKilled)
	mixInt(snap.ComboCount)
	mixF(snap.ComboTimer)
	mixInt(snap.ComboMultiplier)
	mixB(snap.BossActive)
	mixF(snap.EnemyTimer)
	mixF(snap.PowerUpTimer)

	if p := snap.Player; p != nil {
		mixInt(int(p.ID)) //#nosec G115 -- hash computation
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
		mixF(p.Vel.X)
		mixF(p.Vel.Y)
		mixInt(p.Health)
		mixS(string(p.Weapon))
		mixB(p.FacingRight)
		mixB(p.OnGround)
		mixB(p.HasShield)
		mixF(p.ShootCooldown)
		mixF(p.ShieldDuration)
	}

	for _, e := range snap.AllEnemies() {
		mixInt(int(e.ID)) //#nosec G115 -- hash computation
		mixS(e.AIState())
		mixF(e.Pos.X)
		mixF(e.Pos.Y)
		mixF(e.Vel.X)
		mixF(e.Vel.Y)
		mixInt(e.Health)
		mixF(e.ShootCooldown)
	}

	for _, b := range snap.Bullets {
		mixInt(int(b.ID)) //#nosec G115 -- hash computation
		mixF(b.Pos.X)
		mixF(b.Pos.Y)
		mixInt(int(b.Owner)) //#nosec G115 -- hash computation
	}

	for _, pu := range snap.PowerUps {
		mixInt(int(pu.ID)) //#nosec G115 -- hash computation
		mixS(string(pu.Kind))
		mixF(pu.Pos.X)
	}

	mixInt(len(snap.Explosions))
	mixInt(len(snap.Particles))

	h = h*31 + snap.RNGState

	return h
}
