package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseGunner(DefaultGunnerYAML())
	if err != nil {
		t.Fatalf("parseGunner(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGunnerConfig()) {
		t.Error("embedded gunner.yaml drifted from DefaultGunnerConfig()")
	}
}

func TestDefaultGunnerConfigValid(t *testing.T) {
	if err := DefaultGunnerConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadGunnerCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gunner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGunner(path)
	if err != nil {
		t.Fatalf("LoadGunner() error = %v", err)
	}
	if cfg.Physics.Gravity != 30 {
		t.Errorf("Gravity = %v, expected 30", cfg.Physics.Gravity)
	}
	if cfg.Physics.Friction != 0.85 {
		t.Errorf("Friction = %v, expected default 0.85", cfg.Physics.Friction)
	}
	if cfg.Weapons[WeaponSpreadGun].Pellets != 3 {
		t.Error("weapons table should keep defaults when not overridden")
	}
}

func TestLoadGunnerErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  max_health: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(broken, []byte("physics: [not, a, map\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "read"},
		{"invalid table", invalid, "max_health"},
		{"broken yaml", broken, "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadGunner(tc.path)
			if err == nil {
				t.Fatal("LoadGunner() error = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadGunner() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GunnerConfig)
	}{
		{"zero weapon speed", func(c *GunnerConfig) {
			w := c.Weapons[WeaponLaser]
			w.Speed = 0
			c.Weapons[WeaponLaser] = w
		}},
		{"missing weapon", func(c *GunnerConfig) { delete(c.Weapons, WeaponBasic) }},
		{"unknown start weapon", func(c *GunnerConfig) { c.Player.StartWeapon = "rocket" }},
		{"empty bullet bounds", func(c *GunnerConfig) { c.World.BulletMaxX = c.World.BulletMinX }},
		{"soldier without health", func(c *GunnerConfig) { c.Enemies.Soldier.Health = 0 }},
		{"friction above one", func(c *GunnerConfig) { c.Physics.Friction = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"Easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyGunnerPreset(t *testing.T) {
	normal := DefaultGunnerConfig()
	ApplyGunnerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultGunnerConfig()) {
		t.Error("normal preset should not change the table")
	}

	easy := DefaultGunnerConfig()
	ApplyGunnerPreset(&easy, DifficultyEasy)
	hard := DefaultGunnerConfig()
	ApplyGunnerPreset(&hard, DifficultyHard)

	if easy.Player.MaxHealth <= hard.Player.MaxHealth {
		t.Error("easy should give more health than hard")
	}
	if easy.Spawner.MaxEnemies >= hard.Spawner.MaxEnemies {
		t.Error("easy should cap fewer enemies than hard")
	}
	for _, cfg := range []GunnerConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset table invalid: %v", err)
		}
	}
}

func TestProgressionQuota(t *testing.T) {
	p := DefaultGunnerConfig().Progression
	if got := p.RequiredKills(1); got != 10 {
		t.Errorf("RequiredKills(1) = %d, expected 10", got)
	}
	if got := p.RequiredKills(3); got != 20 {
		t.Errorf("RequiredKills(3) = %d, expected 20", got)
	}
	if p.IsBossLevel(2) || !p.IsBossLevel(3) || !p.IsBossLevel(6) {
		t.Error("boss levels should be multiples of 3")
	}
}
