package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gunnerFile = "gunner.yaml"

// LoadGunner loads the shooter tunables.
// Search order: customPath -> ~/.retro-gunner/configs/gunner.yaml -> ./configs/gunner.yaml -> embedded default.
// Files are overlaid on the hardcoded defaults, so a partial file only changes the keys it names.
func LoadGunner(customPath string) (GunnerConfig, error) {
	// Explicit path errors are reported, discovered files are best effort
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GunnerConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseGunner(data)
		if err != nil {
			return GunnerConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(gunnerFile); userCfgPath != "" {
		if cfg, err := readGunner(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readGunner(filepath.Join("configs", gunnerFile)); err == nil {
		return cfg, nil
	}

	cfg, err := parseGunner(defaultGunnerYAML)
	if err != nil {
		return DefaultGunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readGunner(path string) (GunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GunnerConfig{}, err
	}
	return parseGunner(data)
}

// parseGunner overlays YAML onto the defaults and validates the result.
func parseGunner(data []byte) (GunnerConfig, error) {
	cfg := DefaultGunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retro-gunner", "configs", filename)
}

// Marshal renders the table as YAML.
func (c GunnerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
