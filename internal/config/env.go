package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides cfg with any GT4500_* environment variables that are set.
// Unset variables keep the loaded values.
func ApplyEnv(cfg *ShipConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Load runs the full configuration pipeline: file search, readiness preset,
// environment overrides and validation.
func Load(customPath string, readiness Readiness) (ShipConfig, error) {
	cfg, err := LoadShip(customPath)
	if err != nil {
		return cfg, err
	}

	ApplyReadiness(&cfg, readiness)

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
