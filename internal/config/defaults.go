package config

import (
	_ "embed"
)

//go:embed defaults/ship.yaml
var defaultShipYAML []byte

// DefaultShipConfig returns the default GT4500 loadout.
func DefaultShipConfig() ShipConfig {
	return ShipConfig{
		Class: "gt4500",
		Primary: StoreConfig{
			Torpedoes: 10,
		},
		Secondary: StoreConfig{
			Torpedoes: 10,
		},
		FailureRate: 0.0,
		Seed:        0,
	}
}

// GetDefaultYAML returns the embedded default ship YAML.
func GetDefaultYAML() []byte {
	return defaultShipYAML
}
