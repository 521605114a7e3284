package gunner

import (
	"math"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/core"
)

// Intent is the flat per-tick input record. The world reads it verbatim:
// there is no buffering or edge detection.
type Intent struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Jump    bool
	Shoot   bool
	Weapon1 bool
	Weapon2 bool
	Weapon3 bool
}

// IntentFromFrame converts a platform input frame.
func IntentFromFrame(f core.InputFrame) Intent {
	return Intent{
		Left:    f.Has(core.ActionLeft),
		Right:   f.Has(core.ActionRight),
		Up:      f.Has(core.ActionUp),
		Down:    f.Has(core.ActionDown),
		Jump:    f.Has(core.ActionJump),
		Shoot:   f.Has(core.ActionShoot),
		Weapon1: f.Has(core.ActionWeapon1),
		Weapon2: f.Has(core.ActionWeapon2),
		Weapon3: f.Has(core.ActionWeapon3),
	}
}

// applyIntent handles movement, jumping, firing and weapon keys.
// Weapon keys apply after the shot of the same tick.
func (w *World) applyIntent(in Intent) {
	p := w.player
	pc := w.cfg.Player

	if in.Left {
		p.Vel.X = math.Max(p.Vel.X-pc.Acceleration, -pc.Speed)
		p.FacingRight = false
	}
	if in.Right {
		p.Vel.X = math.Min(p.Vel.X+pc.Acceleration, pc.Speed)
		p.FacingRight = true
	}

	if in.Jump && p.OnGround && !p.IsJumping {
		p.Vel.Y = pc.JumpForce
		p.IsJumping = true
		p.OnGround = false
	}

	if in.Shoot && p.ShootCooldown <= 0 {
		w.firePlayer()
	}

	if in.Weapon1 {
		p.Weapon = WeaponBasic
	}
	if in.Weapon2 {
		p.Weapon = WeaponMachineGun
	}
	if in.Weapon3 {
		p.Weapon = WeaponSpreadGun
	}
}

func (w *World) firePlayer() {
	p := w.player
	wc := w.weapon(p.Weapon)
	facing := core.Facing(p.FacingRight)
	muzzle := core.V2(p.Pos.X+facing*w.cfg.Player.MuzzleX, p.Pos.Y+w.cfg.Player.MuzzleY)

	if wc.Pellets <= 1 {
		w.spawnBullet(muzzle, core.V2(facing, 0), p.Weapon, wc.Speed, wc.Damage, p.ID)
	} else {
		center := float64(wc.Pellets-1) / 2
		for i := 0; i < wc.Pellets; i++ {
			angle := (float64(i) - center) * wc.Spread
			dir := core.V2(facing*math.Cos(angle), math.Sin(angle))
			w.spawnBullet(muzzle, dir, p.Weapon, wc.Speed, wc.Damage, p.ID)
		}
	}

	p.ShootCooldown = wc.Cooldown
	w.events.emit(EventShoot, muzzle, p.ID, NoEntity)
}

// weapon looks up a weapon's table, falling back to the basic gun.
func (w *World) weapon(name Weapon) config.WeaponConfig {
	if wc, ok := w.cfg.Weapons[string(name)]; ok {
		return wc
	}
	return w.cfg.Weapons[config.WeaponBasic]
}

// spawnBullet adds a bullet moving along dir scaled by speed. dir is not
// normalized, so callers control the final velocity.
func (w *World) spawnBullet(pos, dir core.Vec2, weapon Weapon, speed float64, damage int, owner EntityID) {
	w.bullets = append(w.bullets, &Bullet{
		ID:     w.newID(),
		Pos:    pos,
		Vel:    dir.Scale(speed),
		Weapon: weapon,
		Owner:  owner,
		Damage: damage,
	})
}
