package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a flag value into a DifficultyPreset.
// The empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyGunnerPreset modifies the table once, before a world is built from it.
func ApplyGunnerPreset(cfg *GunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 5
		cfg.Spawner.EnemyInterval = 3.5
		cfg.Spawner.MaxEnemies = 4
		cfg.Spawner.PowerUpInterval = 6
		cfg.Combo.Window = 3
	case DifficultyHard:
		cfg.Player.MaxHealth = 2
		cfg.Spawner.EnemyInterval = 1.8
		cfg.Spawner.MaxEnemies = 8
		cfg.Spawner.PowerUpInterval = 10
		cfg.Enemies.BulletSpeed = 12
		cfg.Combo.Window = 1.5
	}
}
