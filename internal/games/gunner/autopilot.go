package gunner

import (
	"math"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

// Autopilot is a deterministic scripted player for headless runs and soak
// tests. It reads only the snapshot, like any other input adapter.
type Autopilot struct {
	// EngageRange is the horizontal distance at which it stops and fires.
	EngageRange float64
	// KeepAway is the distance it backs off from a close enemy.
	KeepAway float64
	// DodgeRange is how close an incoming bullet must be to trigger a jump.
	DodgeRange float64
	// EdgeMargin keeps it this far inside the ends of the floor.
	EdgeMargin float64
	// Reach is the height difference it still treats as level with itself.
	Reach float64
	// Headroom is how far above it a ledge still catches a jump.
	Headroom float64
}

// NewAutopilot returns an autopilot with play-tested distances.
func NewAutopilot() *Autopilot {
	return &Autopilot{EngageRange: 7, KeepAway: 2.5, DodgeRange: 2, EdgeMargin: 1.5, Reach: 0.4, Headroom: 2}
}

// Next decides the intent for the coming tick.
func (a *Autopilot) Next(snap Snapshot) Intent {
	var in Intent
	p := snap.Player
	if p == nil || snap.State != StatePlaying {
		return in
	}

	lo, hi, mid := math.Inf(-1), math.Inf(1), 0.0
	if len(snap.Platforms) > 0 {
		floor := Level{Platforms: snap.Platforms}.Floor()
		box := floor.Box()
		lo, hi, mid = box.X+a.EdgeMargin, box.Right()-a.EdgeMargin, floor.X
	}

	target, found := a.nearestTarget(snap, p.Pos.X, lo, hi)
	if !found {
		// Nothing to shoot: walk to the nearest pickup, or back to spawn
		goal := 0.0
		if pu, ok := nearestPowerUp(snap, p.Pos.X); ok {
			goal = pu.Pos.X
		}
		a.walkTo(&in, p.Pos.X, goal, lo, hi)
		return in
	}

	dx := target.Pos.X - p.Pos.X
	dy := target.Pos.Y - p.Pos.Y
	dist := math.Abs(dx)
	wantRight := dx > 0
	raised := dy > a.Reach
	// A jump from under a ledge lands on it instead of clearing the shot
	covered := raised && a.underLedge(snap.Platforms, p.Pos)

	switch {
	case dist < a.KeepAway:
		// Back off, then turn around to fire
		a.walkTo(&in, p.Pos.X, p.Pos.X-core.Sign(dx)*a.EngageRange, lo, hi)
	case dy < -a.Reach:
		// Standing on a ledge above it: drop off on the inner side
		a.walkTo(&in, p.Pos.X, mid, lo, hi)
	case dist > a.EngageRange || covered:
		a.walkTo(&in, p.Pos.X, target.Pos.X, lo, hi)
	}
	if !in.Left && !in.Right && p.FacingRight != wantRight {
		in.Right = wantRight
		in.Left = !wantRight
	}

	in.Shoot = p.FacingRight == wantRight && dist <= a.EngageRange+1
	in.Jump = a.incoming(snap, p) || (raised && !covered && dist <= a.EngageRange)

	// Spread gun against crowds and anything above the line of fire
	if p.Weapon == WeaponBasic && (len(snap.Enemies) >= 3 || raised) {
		in.Weapon3 = true
	}
	return in
}

// walkTo steps toward a goal clamped to [lo, hi].
func (a *Autopilot) walkTo(in *Intent, from, to, lo, hi float64) {
	to = core.ClampF(to, lo, hi)
	switch {
	case to > from+0.5:
		in.Right = true
	case to < from-0.5:
		in.Left = true
	}
}

// incoming reports whether a hostile bullet is about to reach the player.
func (a *Autopilot) incoming(snap Snapshot, p *Player) bool {
	for _, b := range snap.Bullets {
		if b.Owner == p.ID {
			continue
		}
		dx := p.Pos.X - b.Pos.X
		if math.Abs(dx) < a.DodgeRange && math.Abs(p.Pos.Y-b.Pos.Y) < 1 && dx*b.Vel.X > 0 {
			return true
		}
	}
	return false
}

// underLedge reports whether a platform hangs low enough over pos to catch
// a jump.
func (a *Autopilot) underLedge(platforms []Platform, pos core.Vec2) bool {
	const halfWidth = 0.3
	for _, pl := range platforms {
		box := pl.Box()
		if box.Y <= pos.Y || box.Y >= pos.Y+a.Headroom {
			continue
		}
		if pos.X+halfWidth > box.X && pos.X-halfWidth < box.Right() {
			return true
		}
	}
	return false
}

// nearestTarget returns the closest enemy that can be fired on from
// somewhere in [lo, hi].
func (a *Autopilot) nearestTarget(snap Snapshot, x, lo, hi float64) (Enemy, bool) {
	var best Enemy
	found := false
	for _, e := range snap.AllEnemies() {
		if e.Pos.X < lo-a.EngageRange || e.Pos.X > hi+a.EngageRange {
			continue
		}
		if !found || math.Abs(e.Pos.X-x) < math.Abs(best.Pos.X-x) {
			best = e
			found = true
		}
	}
	return best, found
}

func nearestPowerUp(snap Snapshot, x float64) (PowerUp, bool) {
	var best PowerUp
	found := false
	for _, pu := range snap.PowerUps {
		if !found || math.Abs(pu.Pos.X-x) < math.Abs(best.Pos.X-x) {
			best = pu
			found = true
		}
	}
	return best, found
}
