package gunner

import (
	"math"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

// integrate runs the physics pass: bodies, bullets and visual effects.
func (w *World) integrate(dt float64) {
	w.integratePlayer(dt)
	for _, e := range w.enemies {
		w.integrateEnemy(e, dt)
	}
	if w.boss != nil {
		w.integrateEnemy(w.boss, dt)
	}
	w.integrateBullets(dt)
	w.ageEffects(dt)
	w.dropFallenEnemies()
}

func (w *World) integratePlayer(dt float64) {
	p := w.player
	pc := w.cfg.Player

	if !p.OnGround {
		p.Vel.Y -= w.cfg.Physics.Gravity * dt
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	p.OnGround = w.land(&p.Pos, &p.Vel, pc.Width, pc.Height)
	if p.OnGround {
		p.IsJumping = false
	}

	// Per tick, not per second
	p.Vel.X *= w.cfg.Physics.Friction

	p.ShootCooldown = math.Max(0, p.ShootCooldown-dt)
	if p.HasShield {
		p.ShieldDuration -= dt
		if p.ShieldDuration <= 0 {
			p.HasShield = false
			p.ShieldDuration = 0
		}
	}
}

func (w *World) integrateEnemy(e *Enemy, dt float64) {
	if e.Airborne() {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		e.Grounded = false
	} else {
		if !e.Grounded {
			e.Vel.Y -= w.cfg.Physics.Gravity * dt
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		width, height := w.enemySize(e)
		e.Grounded = w.land(&e.Pos, &e.Vel, width, height)
	}
	e.ShootCooldown = math.Max(0, e.ShootCooldown-dt)
}

// contactEpsilon absorbs rounding in the snapped rest height.
const contactEpsilon = 1e-9

// land snaps a falling body onto any platform it touches and reports whether
// it is grounded. Contact is landing-only: rising bodies pass through.
func (w *World) land(pos, vel *core.Vec2, width, height float64) bool {
	grounded := false
	for _, pl := range w.level.Platforms {
		if vel.Y > 0 {
			break
		}
		feet := core.BoxAround(*pos, width, height)
		feet.Y -= contactEpsilon
		feet.H += contactEpsilon
		if !feet.Touches(pl.Box()) {
			continue
		}
		pos.Y = pl.Top() + height/2
		vel.Y = 0
		grounded = true
	}
	return grounded
}

func (w *World) integrateBullets(dt float64) {
	wc := w.cfg.World
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.Pos.X > wc.BulletMinX && b.Pos.X < wc.BulletMaxX &&
			b.Pos.Y > wc.BulletMinY && b.Pos.Y < wc.BulletMaxY {
			kept = append(kept, b)
		}
	}
	clearTail(w.bullets, len(kept))
	w.bullets = kept
}

func (w *World) ageEffects(dt float64) {
	fx := w.cfg.Effects

	explosions := w.explosions[:0]
	for _, x := range w.explosions {
		x.Life -= dt
		x.Size += fx.ExplosionGrowth * dt
		if x.Life > 0 {
			explosions = append(explosions, x)
		}
	}
	clearTail(w.explosions, len(explosions))
	w.explosions = explosions

	particles := w.particles[:0]
	for _, pt := range w.particles {
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		pt.Vel.X *= fx.ParticleDamping
		pt.Vel.Y -= fx.ParticleGravity * dt
		pt.Life -= dt
		if pt.Life > 0 {
			particles = append(particles, pt)
		}
	}
	clearTail(w.particles, len(particles))
	w.particles = particles
}

// dropFallenEnemies removes enemies below the kill plane without scoring.
func (w *World) dropFallenEnemies() {
	limit := w.cfg.World.KillPlaneY
	w.enemies = removeWhere(w.enemies, func(e *Enemy) bool { return e.Pos.Y < limit })
	if w.boss != nil && w.boss.Pos.Y < limit {
		w.logger.Info("boss fell out of the level", "level", w.currentLevel)
		w.boss = nil
		w.bossActive = false
	}
}

func (w *World) enemySize(e *Enemy) (width, height float64) {
	if _, ok := e.Brain.(*BossBrain); ok {
		return w.cfg.Boss.Width, w.cfg.Boss.Height
	}
	return w.cfg.Enemies.Width, w.cfg.Enemies.Height
}

func (w *World) enemyBox(e *Enemy) core.AABB {
	width, height := w.enemySize(e)
	return core.BoxAround(e.Pos, width, height)
}

func (w *World) playerBox() core.AABB {
	return core.BoxAround(w.player.Pos, w.cfg.Player.Width, w.cfg.Player.Height)
}

// removeWhere filters s in place, keeping order.
func removeWhere[T any](s []*T, drop func(*T) bool) []*T {
	kept := s[:0]
	for _, v := range s {
		if !drop(v) {
			kept = append(kept, v)
		}
	}
	clearTail(s, len(kept))
	return kept
}

// clearTail nils out the dropped pointers so they can be collected.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
