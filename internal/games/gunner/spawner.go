package gunner

import (
	"github.com/vovakirdan/retro-gunner/internal/core"
)

// spawn advances both spawn clocks by the real dt and fires each at most
// once per tick. A firing resets only its own clock.
func (w *World) spawn(dt float64) {
	sc := w.cfg.Spawner

	w.enemyTimer += dt
	if w.enemyTimer > sc.EnemyInterval && len(w.enemies) < sc.MaxEnemies && !w.bossActive {
		w.spawnEnemy()
		w.enemyTimer = 0
	}

	w.powerUpTimer += dt
	if w.powerUpTimer > sc.PowerUpInterval && len(w.powerUps) < sc.MaxPowerUps {
		w.spawnPowerUp()
		w.powerUpTimer = 0
	}
}

// spawnEnemy places a random archetype on a random side of the player.
func (w *World) spawnEnemy() {
	x := w.player.Pos.X - w.cfg.Spawner.SpawnDistance
	if w.rng.Coin() {
		x = w.player.Pos.X + w.cfg.Spawner.SpawnDistance
	}
	kind := SpawnableKinds[w.rng.Intn(len(SpawnableKinds))]
	w.enemies = append(w.enemies, w.newEnemy(kind, x))
}

// newEnemy builds a spawnable archetype at x with its table's stats.
// Flying enemies draw their hover phase and speed from the world RNG.
func (w *World) newEnemy(kind EnemyKind, x float64) *Enemy {
	ec := w.cfg.Enemies
	e := &Enemy{ID: w.newID(), FacingRight: true}

	switch kind {
	case KindSoldier:
		e.Pos = core.V2(x, ec.Soldier.SpawnY)
		e.Health = ec.Soldier.Health
		e.Brain = &SoldierBrain{
			PatrolStart: x - ec.Soldier.PatrolRange,
			PatrolEnd:   x + ec.Soldier.PatrolRange,
		}
	case KindFlying:
		e.Pos = core.V2(x, ec.Flying.BaseY)
		e.Health = ec.Flying.Health
		e.Brain = &FlyingBrain{
			HoverOffset: w.rng.Angle(),
			HoverSpeed:  w.rng.Range(ec.Flying.HoverSpeedMin, ec.Flying.HoverSpeedMax),
		}
	case KindTurret:
		e.Pos = core.V2(x, ec.Turret.SpawnY)
		e.Health = ec.Turret.Health
		e.Brain = &TurretBrain{}
	case KindRunner:
		e.Pos = core.V2(x, ec.Runner.SpawnY)
		e.Health = ec.Runner.Health
		e.ShootCooldown = 999 // never fires
		e.Brain = &RunnerBrain{
			PatrolStart: x - ec.Runner.PatrolRange,
			PatrolEnd:   x + ec.Runner.PatrolRange,
		}
	default:
		panic("gunner: cannot spawn " + string(kind))
	}
	e.MaxHealth = e.Health
	return e
}

// spawnPowerUp drops a random pickup near the player.
func (w *World) spawnPowerUp() {
	sc := w.cfg.Spawner
	x := w.player.Pos.X + w.rng.Range(-sc.PowerUpRange, sc.PowerUpRange)
	kind := PowerUpKinds[w.rng.Intn(len(PowerUpKinds))]

	w.powerUps = append(w.powerUps, &PowerUp{
		ID:   w.newID(),
		Pos:  core.V2(x, sc.PowerUpY),
		Kind: kind,
	})
}

// spawnBoss brings in the boss of the current level.
func (w *World) spawnBoss() {
	bc := w.cfg.Boss
	health := bc.BaseHealth + w.currentLevel*bc.HealthPerLevel
	w.boss = &Enemy{
		ID:        w.newID(),
		Pos:       core.V2(bc.SpawnX, bc.SpawnY),
		Health:    health,
		MaxHealth: health,
		Brain: &BossBrain{
			Phase:       1,
			PatrolStart: -bc.PatrolRange,
			PatrolEnd:   bc.PatrolRange,
		},
	}
	w.bossActive = true
	w.events.emit(EventBossSpawn, w.boss.Pos, NoEntity, w.boss.ID)
	w.logger.Info("boss entered", "level", w.currentLevel, "health", health)
}
