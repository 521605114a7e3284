package gunner

import (
	"errors"
	"fmt"
)

// ErrInvariant wraps every error returned by Validate.
var ErrInvariant = errors.New("gunner: world invariant violated")

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Validate checks the world's structural invariants and returns the first
// violation. Builds with the debug tag run it after every tick.
func (w *World) Validate() error {
	if w.state == StatePlaying && w.player == nil {
		return violation("playing without a player")
	}
	if p := w.player; p != nil {
		if p.MaxHealth <= 0 || p.Health < 0 || p.Health > p.MaxHealth {
			return violation("player health %d outside [0, %d]", p.Health, p.MaxHealth)
		}
		if p.ShootCooldown < 0 || p.ShieldDuration < 0 {
			return violation("player timers negative")
		}
		if !p.Pos.IsFinite() || !p.Vel.IsFinite() {
			return violation("player position or velocity not finite")
		}
	}

	if w.score < 0 {
		return violation("negative score %d", w.score)
	}
	if w.currentLevel < 1 {
		return violation("level %d below 1", w.currentLevel)
	}
	if w.comboTimer < 0 {
		return violation("negative combo timer")
	}
	switch w.comboMultiplier {
	case 1, 2, 4:
	default:
		return violation("combo multiplier %d not in {1, 2, 4}", w.comboMultiplier)
	}
	if w.comboMultiplier > 1 && w.comboTimer <= 0 {
		return violation("combo multiplier %d with expired timer", w.comboMultiplier)
	}
	if (w.boss != nil) != w.bossActive {
		return violation("boss present=%v but bossActive=%v", w.boss != nil, w.bossActive)
	}

	seen := make(map[EntityID]bool)
	claim := func(id EntityID, what string) error {
		if id == NoEntity || id > w.nextID {
			return violation("%s has unassigned id %d", what, id)
		}
		if seen[id] {
			return violation("duplicate id %d (%s)", id, what)
		}
		seen[id] = true
		return nil
	}

	if w.player != nil {
		if err := claim(w.player.ID, "player"); err != nil {
			return err
		}
	}
	var prev EntityID
	for _, e := range w.enemies {
		if err := claim(e.ID, "enemy"); err != nil {
			return err
		}
		if e.ID <= prev {
			return violation("enemies out of id order at %d", e.ID)
		}
		prev = e.ID
		if err := checkEnemy(e); err != nil {
			return err
		}
	}
	if w.boss != nil {
		if err := claim(w.boss.ID, "boss"); err != nil {
			return err
		}
		if err := checkEnemy(w.boss); err != nil {
			return err
		}
	}
	for _, b := range w.bullets {
		if err := claim(b.ID, "bullet"); err != nil {
			return err
		}
	}
	for _, pu := range w.powerUps {
		if err := claim(pu.ID, "power-up"); err != nil {
			return err
		}
	}
	return nil
}

func checkEnemy(e *Enemy) error {
	if e.Brain == nil {
		return violation("enemy %d has no brain", e.ID)
	}
	if e.Health < 1 || e.Health > e.MaxHealth {
		return violation("%s %d health %d outside [1, %d]", e.Kind(), e.ID, e.Health, e.MaxHealth)
	}
	if !e.Pos.IsFinite() || !e.Vel.IsFinite() {
		return violation("%s %d position or velocity not finite", e.Kind(), e.ID)
	}
	return nil
}
