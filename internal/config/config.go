// Package config provides YAML-based tunables loading and difficulty
// presets for the shooter simulation.
package config

// GunnerConfig is the full tunables table of the simulation.
// It is read-only once a world has been built from it.
type GunnerConfig struct {
	Physics     PhysicsConfig           `yaml:"physics"`
	Player      PlayerConfig            `yaml:"player"`
	Weapons     map[string]WeaponConfig `yaml:"weapons"`
	Enemies     EnemiesConfig           `yaml:"enemies"`
	Boss        BossConfig              `yaml:"boss"`
	Spawner     SpawnerConfig           `yaml:"spawner"`
	Combo       ComboConfig             `yaml:"combo"`
	Scoring     ScoringConfig           `yaml:"scoring"`
	World       WorldConfig             `yaml:"world"`
	Effects     EffectsConfig           `yaml:"effects"`
	Progression ProgressionConfig       `yaml:"progression"`
}

// PhysicsConfig defines global integration parameters.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"` // per-tick horizontal damping of the player
}

// PlayerConfig defines the player body and movement.
type PlayerConfig struct {
	MaxHealth      int     `yaml:"max_health"`
	Speed          float64 `yaml:"speed"`
	Acceleration   float64 `yaml:"acceleration"`
	JumpForce      float64 `yaml:"jump_force"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	MuzzleX        float64 `yaml:"muzzle_x"`
	MuzzleY        float64 `yaml:"muzzle_y"`
	ShieldDuration float64 `yaml:"shield_duration"`
	StartWeapon    string  `yaml:"start_weapon"`
}

// WeaponConfig defines one weapon. Pellets > 1 fires a fan spaced by Spread radians.
type WeaponConfig struct {
	Damage   int     `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"`
	Speed    float64 `yaml:"speed"`
	Spread   float64 `yaml:"spread"`
	Pellets  int     `yaml:"pellets"`
}

// EnemiesConfig groups the per-archetype tables.
type EnemiesConfig struct {
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	BulletDamage int           `yaml:"bullet_damage"`
	BulletSpeed  float64       `yaml:"bullet_speed"`
	Soldier      SoldierConfig `yaml:"soldier"`
	Flying       FlyingConfig  `yaml:"flying"`
	Turret       TurretConfig  `yaml:"turret"`
	Runner       RunnerConfig  `yaml:"runner"`
}

// SoldierConfig defines the patrolling rifleman.
type SoldierConfig struct {
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	Cooldown       float64 `yaml:"cooldown"`
	AttackRange    float64 `yaml:"attack_range"`
	DisengageRange float64 `yaml:"disengage_range"`
	PatrolRange    float64 `yaml:"patrol_range"`
	SpawnY         float64 `yaml:"spawn_y"`
	MuzzleX        float64 `yaml:"muzzle_x"`
	MuzzleY        float64 `yaml:"muzzle_y"`
}

// FlyingConfig defines the hovering diver.
type FlyingConfig struct {
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	Cooldown       float64 `yaml:"cooldown"`
	AttackRange    float64 `yaml:"attack_range"`
	DiveRange      float64 `yaml:"dive_range"`
	DiveSpeed      float64 `yaml:"dive_speed"`
	DiveClearance  float64 `yaml:"dive_clearance"`
	FollowDeadzone float64 `yaml:"follow_deadzone"`
	BaseY          float64 `yaml:"base_y"`
	Amplitude      float64 `yaml:"amplitude"`
	Ease           float64 `yaml:"ease"`
	HoverSpeedMin  float64 `yaml:"hover_speed_min"`
	HoverSpeedMax  float64 `yaml:"hover_speed_max"`
}

// TurretConfig defines the stationary gun.
type TurretConfig struct {
	Health      int     `yaml:"health"`
	Cooldown    float64 `yaml:"cooldown"`
	AttackRange float64 `yaml:"attack_range"`
	SpawnY      float64 `yaml:"spawn_y"`
	MuzzleY     float64 `yaml:"muzzle_y"`
}

// RunnerConfig defines the charging melee enemy.
type RunnerConfig struct {
	Health      int     `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	ChargeSpeed float64 `yaml:"charge_speed"`
	ChargeRange float64 `yaml:"charge_range"`
	PatrolRange float64 `yaml:"patrol_range"`
	SpawnY      float64 `yaml:"spawn_y"`
}

// BossConfig defines the two-phase boss.
type BossConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BaseHealth     int     `yaml:"base_health"`
	HealthPerLevel int     `yaml:"health_per_level"`
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	PatrolRange    float64 `yaml:"patrol_range"`
	Speed          float64 `yaml:"speed"`
	StopRange      float64 `yaml:"stop_range"`
	PhaseThreshold float64 `yaml:"phase_threshold"`
	FanCooldown    float64 `yaml:"fan_cooldown"`
	FanCount       int     `yaml:"fan_count"`
	FanForward     float64 `yaml:"fan_forward"`
	FanSpread      float64 `yaml:"fan_spread"`
	FanStep        float64 `yaml:"fan_step"`
	JumpForce      float64 `yaml:"jump_force"`
	LungeSpeed     float64 `yaml:"lunge_speed"`
	JumpCooldown   float64 `yaml:"jump_cooldown"`
	BurstCooldown  float64 `yaml:"burst_cooldown"`
	BurstCount     int     `yaml:"burst_count"`
	BurstScale     float64 `yaml:"burst_scale"`
}

// SpawnerConfig defines the enemy and power-up timers and caps.
type SpawnerConfig struct {
	EnemyInterval   float64 `yaml:"enemy_interval"`
	MaxEnemies      int     `yaml:"max_enemies"`
	SpawnDistance   float64 `yaml:"spawn_distance"`
	PowerUpInterval float64 `yaml:"powerup_interval"`
	MaxPowerUps     int     `yaml:"max_powerups"`
	PowerUpRange    float64 `yaml:"powerup_range"`
	PowerUpY        float64 `yaml:"powerup_y"`
}

// ComboConfig defines the kill chain window and multiplier tiers.
type ComboConfig struct {
	Window float64 `yaml:"window"`
	X2At   int     `yaml:"x2_at"`
	X4At   int     `yaml:"x4_at"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	KillPoints int `yaml:"kill_points"`
}

// WorldConfig defines bounds and fixed collision sizes.
type WorldConfig struct {
	BulletMinX  float64 `yaml:"bullet_min_x"`
	BulletMaxX  float64 `yaml:"bullet_max_x"`
	BulletMinY  float64 `yaml:"bullet_min_y"`
	BulletMaxY  float64 `yaml:"bullet_max_y"`
	BulletSize  float64 `yaml:"bullet_size"`
	PowerUpSize float64 `yaml:"powerup_size"`
	KillPlaneY  float64 `yaml:"kill_plane_y"`
}

// EffectsConfig defines the visual-only explosion and particle bursts.
type EffectsConfig struct {
	ExplosionSize   float64 `yaml:"explosion_size"`
	ExplosionLife   float64 `yaml:"explosion_life"`
	ExplosionGrowth float64 `yaml:"explosion_growth"`
	ParticleCount   int     `yaml:"particle_count"`
	ParticleSpeed   float64 `yaml:"particle_speed"`
	ParticleLife    float64 `yaml:"particle_life"`
	ParticleDamping float64 `yaml:"particle_damping"`
	ParticleGravity float64 `yaml:"particle_gravity"`
}

// ProgressionConfig defines kill quotas and boss cadence.
type ProgressionConfig struct {
	BaseKills     int `yaml:"base_kills"`
	KillsPerLevel int `yaml:"kills_per_level"`
	BossEvery     int `yaml:"boss_every"`
	FinalLevel    int `yaml:"final_level"`
	HealOnAdvance int `yaml:"heal_on_advance"`
}

// RequiredKills returns the kill quota of the given 1-based level.
func (p ProgressionConfig) RequiredKills(level int) int {
	return p.BaseKills + (level-1)*p.KillsPerLevel
}

// IsBossLevel reports whether the quota of level is closed by a boss fight.
func (p ProgressionConfig) IsBossLevel(level int) bool {
	return p.BossEvery > 0 && level%p.BossEvery == 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
