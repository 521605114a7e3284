package gunner

import (
	"math"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

// think runs every enemy's state machine against the player position of
// this tick. Bullets fired here are resolved by combat in the same tick.
func (w *World) think(dt float64) {
	for _, e := range w.enemies {
		w.thinkEnemy(e, dt)
	}
	if w.boss != nil {
		w.thinkEnemy(w.boss, dt)
	}
}

func (w *World) thinkEnemy(e *Enemy, dt float64) {
	switch b := e.Brain.(type) {
	case *SoldierBrain:
		w.thinkSoldier(e, b)
	case *FlyingBrain:
		w.thinkFlying(e, b, dt)
	case *TurretBrain:
		w.thinkTurret(e)
	case *RunnerBrain:
		w.thinkRunner(e, b)
	case *BossBrain:
		w.thinkBoss(e, b, dt)
	default:
		panic("gunner: unknown brain")
	}
}

// patrol walks between start and end, turning at the bounds.
func patrol(e *Enemy, start, end, speed float64) {
	switch {
	case e.Pos.X <= start:
		e.FacingRight = true
		e.Vel.X = speed
	case e.Pos.X >= end:
		e.FacingRight = false
		e.Vel.X = -speed
	case e.Vel.X == 0:
		e.Vel.X = core.Facing(e.FacingRight) * speed
	}
}

func (w *World) thinkSoldier(e *Enemy, b *SoldierBrain) {
	sc := w.cfg.Enemies.Soldier
	dx := w.player.Pos.X - e.Pos.X

	if !b.Attacking {
		patrol(e, b.PatrolStart, b.PatrolEnd, sc.Speed)
		if math.Abs(dx) < sc.AttackRange {
			b.Attacking = true
		}
	}

	// Entering range fires in the same tick
	if b.Attacking {
		e.Vel.X = 0
		e.FacingRight = dx > 0
		if e.ShootCooldown <= 0 {
			facing := core.Facing(e.FacingRight)
			muzzle := core.V2(e.Pos.X+facing*sc.MuzzleX, e.Pos.Y+sc.MuzzleY)
			w.fireEnemy(e, muzzle, core.V2(facing, 0))
			e.ShootCooldown = sc.Cooldown
		}
		if math.Abs(dx) > sc.DisengageRange {
			b.Attacking = false
		}
	}
}

func (w *World) thinkFlying(e *Enemy, b *FlyingBrain, dt float64) {
	fc := w.cfg.Enemies.Flying
	b.HoverOffset += dt * b.HoverSpeed
	targetY := fc.BaseY + math.Sin(b.HoverOffset)*fc.Amplitude

	dx := w.player.Pos.X - e.Pos.X
	dy := w.player.Pos.Y - e.Pos.Y

	if math.Abs(dx) > fc.FollowDeadzone {
		e.Vel.X = core.Sign(dx) * fc.Speed
		e.FacingRight = dx > 0
	} else {
		e.Vel.X = 0
	}

	b.Diving = math.Abs(dx) < fc.DiveRange && math.Abs(dy) > fc.DiveClearance
	if b.Diving {
		e.Vel.Y = -fc.DiveSpeed
	} else {
		e.Vel.Y = (targetY - e.Pos.Y) * fc.Ease
	}

	if e.ShootCooldown <= 0 && math.Abs(dx) < fc.AttackRange {
		w.fireEnemy(e, e.Pos, w.aimAt(e, dx, dy))
		e.ShootCooldown = fc.Cooldown
	}
}

func (w *World) thinkTurret(e *Enemy) {
	tc := w.cfg.Enemies.Turret
	e.Vel.X = 0

	dx := w.player.Pos.X - e.Pos.X
	dy := w.player.Pos.Y - e.Pos.Y
	e.FacingRight = dx > 0

	if e.ShootCooldown <= 0 && math.Abs(dx) < tc.AttackRange {
		muzzle := core.V2(e.Pos.X, e.Pos.Y+tc.MuzzleY)
		w.fireEnemy(e, muzzle, w.aimAt(e, dx, dy))
		e.ShootCooldown = tc.Cooldown
	}
}

func (w *World) thinkRunner(e *Enemy, b *RunnerBrain) {
	rc := w.cfg.Enemies.Runner
	dx := w.player.Pos.X - e.Pos.X

	if math.Abs(dx) < rc.ChargeRange {
		b.Charging = true
	}
	if !b.Charging {
		patrol(e, b.PatrolStart, b.PatrolEnd, rc.Speed)
		return
	}

	e.FacingRight = dx > 0
	e.Vel.X = core.Facing(e.FacingRight) * rc.ChargeSpeed
}

func (w *World) thinkBoss(e *Enemy, b *BossBrain, dt float64) {
	bc := w.cfg.Boss
	dx := w.player.Pos.X - e.Pos.X
	e.FacingRight = dx > 0
	facing := core.Facing(e.FacingRight)

	// No hysteresis: the phase follows the health ratio of this tick
	if float64(e.Health)/float64(e.MaxHealth) > bc.PhaseThreshold {
		b.Phase = 1
		if math.Abs(dx) > bc.StopRange && b.canAdvance(e.Pos.X, facing) {
			e.Vel.X = facing * bc.Speed
		} else {
			e.Vel.X = 0
		}

		if e.ShootCooldown <= 0 {
			center := float64(bc.FanCount-1) / 2
			for i := 0; i < bc.FanCount; i++ {
				off := float64(i) - center
				origin := core.V2(e.Pos.X, e.Pos.Y+off*bc.FanStep)
				w.fireEnemy(e, origin, core.V2(facing*bc.FanForward, off*bc.FanSpread))
			}
			e.ShootCooldown = bc.FanCooldown
		}
		return
	}

	b.Phase = 2
	b.JumpCooldown = math.Max(0, b.JumpCooldown-dt)
	if b.JumpCooldown <= 0 && e.Grounded {
		e.Vel.Y = bc.JumpForce
		e.Vel.X = 0
		if b.canAdvance(e.Pos.X, facing) {
			e.Vel.X = facing * bc.LungeSpeed
		}
		e.Grounded = false
		b.JumpCooldown = bc.JumpCooldown
	} else if e.Grounded {
		e.Vel.X = 0
	}

	if e.ShootCooldown <= 0 {
		for i := 0; i < bc.BurstCount; i++ {
			angle := float64(i) / float64(bc.BurstCount) * 2 * math.Pi
			dir := core.V2(math.Cos(angle), math.Sin(angle)).Scale(bc.BurstScale)
			w.fireEnemy(e, e.Pos, dir)
		}
		e.ShootCooldown = bc.BurstCooldown
	}
}

// canAdvance reports whether a step along facing stays inside the patrol span.
func (b *BossBrain) canAdvance(x, facing float64) bool {
	if facing < 0 {
		return x > b.PatrolStart
	}
	return x < b.PatrolEnd
}

// aimAt returns the unit vector from e toward the player, or straight
// ahead when they share a position.
func (w *World) aimAt(e *Enemy, dx, dy float64) core.Vec2 {
	dir := core.V2(dx, dy).Normalized()
	if dir == (core.Vec2{}) {
		return core.V2(core.Facing(e.FacingRight), 0)
	}
	return dir
}

func (w *World) fireEnemy(e *Enemy, origin, dir core.Vec2) {
	ec := w.cfg.Enemies
	w.spawnBullet(origin, dir, WeaponBasic, ec.BulletSpeed, ec.BulletDamage, e.ID)
}
