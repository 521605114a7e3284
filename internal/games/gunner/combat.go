package gunner

import (
	"math"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

// resolveCombat runs the combo clock, pickups and bullet collisions.
func (w *World) resolveCombat(dt float64) {
	w.tickCombo(dt)
	w.collectPowerUps()
	w.resolveBullets()
}

// tickCombo counts the combo window down. Reaching zero resets the chain once.
func (w *World) tickCombo(dt float64) {
	if w.comboTimer <= 0 {
		return
	}
	w.comboTimer = math.Max(0, w.comboTimer-dt)
	if w.comboTimer == 0 {
		w.comboCount = 0
		w.comboMultiplier = 1
	}
}

func (w *World) collectPowerUps() {
	p := w.player
	pbox := w.playerBox()
	size := w.cfg.World.PowerUpSize

	for _, pu := range w.powerUps {
		if pu.Collected || !pbox.Overlaps(core.BoxAround(pu.Pos, size, size)) {
			continue
		}

		switch pu.Kind {
		case PowerUpMachineGun:
			p.Weapon = WeaponMachineGun
		case PowerUpSpreadGun:
			p.Weapon = WeaponSpreadGun
		case PowerUpLaser:
			p.Weapon = WeaponLaser
		case PowerUpExtraLife:
			p.Health = min(p.Health+1, p.MaxHealth)
		case PowerUpShield:
			p.HasShield = true
			p.ShieldDuration = w.cfg.Player.ShieldDuration
		}

		pu.Collected = true
		w.events.emit(EventCollect, pu.Pos, p.ID, pu.ID)
	}

	w.powerUps = removeWhere(w.powerUps, func(pu *PowerUp) bool { return pu.Collected })
}

// resolveBullets tests each bullet once, in id order. Removals are collected
// by id and applied after the pass.
func (w *World) resolveBullets() {
	p := w.player
	size := w.cfg.World.BulletSize
	spent := make(map[EntityID]bool)
	dead := make(map[EntityID]bool)

	for _, b := range w.bullets {
		// A kill may have ended the level or the run earlier in this pass
		if w.state != StatePlaying {
			break
		}
		box := core.BoxAround(b.Pos, size, size)

		if b.Owner == p.ID {
			target := w.firstEnemyHit(box, dead)
			if target == nil {
				continue
			}
			spent[b.ID] = true
			target.Health -= b.Damage
			if target.Health > 0 {
				w.events.emit(EventHit, b.Pos, b.ID, target.ID)
				continue
			}
			dead[target.ID] = true
			w.kill(target, b)
			continue
		}

		if !box.Overlaps(w.playerBox()) {
			continue
		}
		spent[b.ID] = true
		if p.HasShield {
			w.events.emit(EventShieldBlock, b.Pos, b.ID, p.ID)
			continue
		}
		p.Health -= b.Damage
		w.events.emit(EventPlayerHit, b.Pos, b.ID, p.ID)
		if p.Health <= 0 {
			p.Health = 0
			w.logger.Info("player down", "level", w.currentLevel, "score", w.score)
			w.setState(StateGameOver)
		}
	}

	w.bullets = removeWhere(w.bullets, func(b *Bullet) bool { return spent[b.ID] })
	if len(dead) > 0 {
		w.enemies = removeWhere(w.enemies, func(e *Enemy) bool { return dead[e.ID] })
	}
}

// firstEnemyHit returns the first live enemy overlapping box, the boss last.
func (w *World) firstEnemyHit(box core.AABB, dead map[EntityID]bool) *Enemy {
	for _, e := range w.enemies {
		if !dead[e.ID] && box.Overlaps(w.enemyBox(e)) {
			return e
		}
	}
	if w.boss != nil && !dead[w.boss.ID] && box.Overlaps(w.enemyBox(w.boss)) {
		return w.boss
	}
	return nil
}

// kill does the bookkeeping of a destroyed enemy: combo, score, effects and
// the level quota check.
func (w *World) kill(e *Enemy, by *Bullet) {
	cc := w.cfg.Combo

	if w.comboTimer > 0 {
		w.comboCount++
	} else {
		w.comboCount = 1
	}
	switch {
	case w.comboCount >= cc.X4At:
		w.comboMultiplier = 4
	case w.comboCount >= cc.X2At:
		w.comboMultiplier = 2
	default:
		w.comboMultiplier = 1
	}
	w.score += w.cfg.Scoring.KillPoints * w.comboMultiplier
	w.comboTimer = cc.Window
	w.enemiesKilled++
	w.totalKills++

	w.burst(e.Pos)
	w.events.emit(EventKill, e.Pos, by.ID, e.ID)

	if e == w.boss {
		w.boss = nil
		w.bossActive = false
		w.logger.Info("boss defeated", "level", w.currentLevel, "score", w.score)
		if w.currentLevel >= w.cfg.Progression.FinalLevel {
			w.setState(StateVictory)
		} else {
			w.setState(StateLevelComplete)
		}
		return
	}

	prog := w.cfg.Progression
	if w.bossActive || w.enemiesKilled < prog.RequiredKills(w.currentLevel) {
		return
	}
	if prog.IsBossLevel(w.currentLevel) {
		w.spawnBoss()
		return
	}
	w.setState(StateLevelComplete)
}

// burst adds the explosion and radial particles of a kill.
func (w *World) burst(at core.Vec2) {
	fx := w.cfg.Effects
	w.explosions = append(w.explosions, &Explosion{
		ID:   w.newID(),
		Pos:  at,
		Size: fx.ExplosionSize,
		Life: fx.ExplosionLife,
	})
	for i := 0; i < fx.ParticleCount; i++ {
		angle := float64(i) / float64(fx.ParticleCount) * 2 * math.Pi
		w.particles = append(w.particles, &Particle{
			ID:   w.newID(),
			Pos:  at,
			Vel:  core.V2(math.Cos(angle), math.Sin(angle)).Scale(fx.ParticleSpeed),
			Life: fx.ParticleLife,
		})
	}
}
