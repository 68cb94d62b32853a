package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShip loads the ship configuration.
// Search order: customPath -> ~/.gt4500/ship.yaml -> ./configs/ship.yaml -> embedded default
func LoadShip(customPath string) (ShipConfig, error) {
	// Start from defaults so partial files keep sane values
	cfg := DefaultShipConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ship.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := cfg
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ship.yaml")); err == nil {
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShipYAML, &cfg); err != nil {
		return DefaultShipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gt4500", filename)
}

// ApplyReadiness modifies the config based on a readiness level.
func ApplyReadiness(cfg *ShipConfig, r Readiness) {
	if r == "" {
		return
	}

	cfg.FailureRate = FailureRateForReadiness(r)

	// A damaged ship lost half of each magazine
	if r == ReadinessDamaged {
		cfg.Primary.Torpedoes /= 2
		cfg.Secondary.Torpedoes /= 2
	}
}
