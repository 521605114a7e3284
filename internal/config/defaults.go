package config

import (
	_ "embed"
)

//go:embed defaults/gunner.yaml
var defaultGunnerYAML []byte

// Weapon names used as keys of GunnerConfig.Weapons.
const (
	WeaponBasic      = "basic"
	WeaponMachineGun = "machine_gun"
	WeaponSpreadGun  = "spread_gun"
	WeaponLaser      = "laser"
)

// DefaultGunnerConfig returns the hardcoded tunables table.
// defaults/gunner.yaml carries the same values.
func DefaultGunnerConfig() GunnerConfig {
	return GunnerConfig{
		Physics: PhysicsConfig{
			Gravity:  25,
			Friction: 0.85,
		},
		Player: PlayerConfig{
			MaxHealth:      3,
			Speed:          5,
			Acceleration:   20,
			JumpForce:      8,
			Width:          0.6,
			Height:         1.2,
			SpawnX:         0,
			SpawnY:         -1.5,
			MuzzleX:        0.4,
			MuzzleY:        0.1,
			ShieldDuration: 10,
			StartWeapon:    WeaponBasic,
		},
		Weapons: map[string]WeaponConfig{
			WeaponBasic:      {Damage: 1, Cooldown: 0.2, Speed: 10, Pellets: 1},
			WeaponMachineGun: {Damage: 1, Cooldown: 0.1, Speed: 12, Pellets: 1},
			WeaponSpreadGun:  {Damage: 2, Cooldown: 0.3, Speed: 10, Spread: 0.3, Pellets: 3},
			WeaponLaser:      {Damage: 3, Cooldown: 0.5, Speed: 15, Pellets: 1},
		},
		Enemies: EnemiesConfig{
			Width:        0.5,
			Height:       0.8,
			BulletDamage: 1,
			BulletSpeed:  10,
			Soldier: SoldierConfig{
				Health:         2,
				Speed:          2,
				Cooldown:       1.0,
				AttackRange:    6,
				DisengageRange: 8,
				PatrolRange:    3,
				SpawnY:         -1.5,
				MuzzleX:        0.3,
				MuzzleY:        0.1,
			},
			Flying: FlyingConfig{
				Health:         1,
				Speed:          2,
				Cooldown:       1.5,
				AttackRange:    7,
				DiveRange:      3,
				DiveSpeed:      5,
				DiveClearance:  1,
				FollowDeadzone: 1,
				BaseY:          2,
				Amplitude:      1.5,
				Ease:           3,
				HoverSpeedMin:  2,
				HoverSpeedMax:  3,
			},
			Turret: TurretConfig{
				Health:      3,
				Cooldown:    0.5,
				AttackRange: 10,
				SpawnY:      -1.3,
				MuzzleY:     0.2,
			},
			Runner: RunnerConfig{
				Health:      1,
				Speed:       3,
				ChargeSpeed: 4,
				ChargeRange: 8,
				PatrolRange: 5,
				SpawnY:      -1.5,
			},
		},
		Boss: BossConfig{
			Width:          1.0,
			Height:         1.6,
			BaseHealth:     20,
			HealthPerLevel: 5,
			SpawnX:         10,
			SpawnY:         0,
			PatrolRange:    10,
			Speed:          3,
			StopRange:      4,
			PhaseThreshold: 0.5,
			FanCooldown:    0.8,
			FanCount:       3,
			FanForward:     0.8,
			FanSpread:      0.3,
			FanStep:        0.2,
			JumpForce:      6,
			LungeSpeed:     4,
			JumpCooldown:   2,
			BurstCooldown:  1.5,
			BurstCount:     8,
			BurstScale:     0.7,
		},
		Spawner: SpawnerConfig{
			EnemyInterval:   2.5,
			MaxEnemies:      6,
			SpawnDistance:   12,
			PowerUpInterval: 8,
			MaxPowerUps:     3,
			PowerUpRange:    8,
			PowerUpY:        -0.5,
		},
		Combo: ComboConfig{
			Window: 2.0,
			X2At:   3,
			X4At:   5,
		},
		Scoring: ScoringConfig{
			KillPoints: 100,
		},
		World: WorldConfig{
			BulletMinX:  -50,
			BulletMaxX:  100,
			BulletMinY:  -10,
			BulletMaxY:  10,
			BulletSize:  0.2,
			PowerUpSize: 0.5,
			KillPlaneY:  -12,
		},
		Effects: EffectsConfig{
			ExplosionSize:   1.5,
			ExplosionLife:   0.5,
			ExplosionGrowth: 2,
			ParticleCount:   8,
			ParticleSpeed:   3,
			ParticleLife:    1.0,
			ParticleDamping: 0.95,
			ParticleGravity: 8,
		},
		Progression: ProgressionConfig{
			BaseKills:     10,
			KillsPerLevel: 5,
			BossEvery:     3,
			FinalLevel:    9,
			HealOnAdvance: 1,
		},
	}
}

// DefaultGunnerYAML returns the embedded default table as YAML.
func DefaultGunnerYAML() []byte {
	return defaultGunnerYAML
}
