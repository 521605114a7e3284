package config

import (
	"errors"
	"fmt"
)

// Validate rejects tables the simulation cannot run with.
func (c GunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Friction >= 0 && c.Physics.Friction <= 1, "physics.friction %v outside [0, 1]", c.Physics.Friction)
	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Speed > 0, "player.speed must be positive")

	for _, name := range []string{WeaponBasic, WeaponMachineGun, WeaponSpreadGun, WeaponLaser} {
		w, ok := c.Weapons[name]
		if !ok {
			errs = append(errs, fmt.Errorf("weapons.%s missing", name))
			continue
		}
		check(w.Speed > 0, "weapons.%s.speed must be positive", name)
		check(w.Damage > 0, "weapons.%s.damage must be positive", name)
		check(w.Cooldown >= 0, "weapons.%s.cooldown must not be negative", name)
		check(w.Pellets > 0, "weapons.%s.pellets must be positive", name)
	}
	_, ok := c.Weapons[c.Player.StartWeapon]
	check(ok, "player.start_weapon %q is not a weapon", c.Player.StartWeapon)

	e := c.Enemies
	check(e.Width > 0 && e.Height > 0, "enemies size must be positive")
	check(e.BulletSpeed > 0, "enemies.bullet_speed must be positive")
	check(e.Soldier.Health > 0, "enemies.soldier.health must be positive")
	check(e.Flying.Health > 0, "enemies.flying.health must be positive")
	check(e.Turret.Health > 0, "enemies.turret.health must be positive")
	check(e.Runner.Health > 0, "enemies.runner.health must be positive")
	check(e.Flying.HoverSpeedMax >= e.Flying.HoverSpeedMin, "enemies.flying hover speed range is empty")

	check(c.Boss.BaseHealth > 0, "boss.base_health must be positive")
	check(c.Boss.Width > 0 && c.Boss.Height > 0, "boss size must be positive")

	check(c.Spawner.MaxEnemies >= 0 && c.Spawner.MaxPowerUps >= 0, "spawner caps must not be negative")
	check(c.Combo.Window > 0, "combo.window must be positive")
	check(c.Combo.X4At >= c.Combo.X2At, "combo.x4_at must not be below x2_at")

	w := c.World
	check(w.BulletMaxX > w.BulletMinX && w.BulletMaxY > w.BulletMinY, "world bullet bounds are empty")
	check(w.BulletSize > 0 && w.PowerUpSize > 0, "world collision sizes must be positive")

	check(c.Progression.BaseKills > 0, "progression.base_kills must be positive")
	check(c.Progression.FinalLevel > 0, "progression.final_level must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid gunner table: %w", errors.Join(errs...))
	}
	return nil
}
