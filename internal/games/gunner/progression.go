package gunner

import (
	"github.com/vovakirdan/retro-gunner/internal/core"
)

// StartGame begins a fresh session on level 1 from any state.
func (w *World) StartGame() {
	pc := w.cfg.Player
	w.player = &Player{
		ID:          w.newID(),
		Pos:         core.V2(pc.SpawnX, pc.SpawnY),
		Health:      pc.MaxHealth,
		MaxHealth:   pc.MaxHealth,
		Weapon:      Weapon(pc.StartWeapon),
		FacingRight: true,
	}

	w.clearTransient()
	w.score = 0
	w.currentLevel = 1
	w.enemiesKilled = 0
	w.totalKills = 0
	w.sessionStart = w.tick
	w.comboCount = 0
	w.comboTimer = 0
	w.comboMultiplier = 1
	w.level = GenerateLevel(w.currentLevel)

	w.logger.Info("session started", "seed", w.seed)
	w.setState(StatePlaying)
}

// Restart is StartGame under the name the game-over screen uses.
func (w *World) Restart() {
	w.StartGame()
}

// NextLevel advances from level_complete to the next level and reports
// whether it did. The player keeps weapon and score, is moved back to the
// spawn point and healed a little.
func (w *World) NextLevel() bool {
	if w.state != StateLevelComplete || w.player == nil {
		return false
	}

	pc := w.cfg.Player
	p := w.player
	p.Pos = core.V2(pc.SpawnX, pc.SpawnY)
	p.Vel = core.Vec2{}
	p.OnGround = false
	p.IsJumping = false
	p.Health = min(p.MaxHealth, p.Health+w.cfg.Progression.HealOnAdvance)

	w.currentLevel++
	w.clearTransient()
	w.enemiesKilled = 0
	w.level = GenerateLevel(w.currentLevel)

	w.logger.Info("level advanced", "level", w.currentLevel, "layout", LayoutName(w.currentLevel), "score", w.score)
	w.setState(StatePlaying)
	return true
}

// clearTransient empties every per-level collection, the boss and the spawn clocks.
func (w *World) clearTransient() {
	w.enemies = nil
	w.bullets = nil
	w.powerUps = nil
	w.explosions = nil
	w.particles = nil
	w.boss = nil
	w.bossActive = false
	w.enemyTimer = 0
	w.powerUpTimer = 0
}

// progress runs the end-of-tick transition checks.
func (w *World) progress() {
	if w.state != StatePlaying {
		return
	}
	if w.player.Pos.Y < w.cfg.World.KillPlaneY {
		w.player.Health = 0
		w.logger.Info("player fell out of the level", "level", w.currentLevel, "score", w.score)
		w.setState(StateGameOver)
	}
}

// RequiredKills returns the kill quota of the current level.
func (w *World) RequiredKills() int {
	return w.cfg.Progression.RequiredKills(w.currentLevel)
}
