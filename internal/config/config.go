// Package config provides YAML-based ship configuration loading, readiness
// presets and environment overrides for the fire-control system.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid ship configuration")

// ShipConfig contains the loadout of a ship.
type ShipConfig struct {
	Class       string      `yaml:"class"        env:"GT4500_CLASS"`
	Primary     StoreConfig `yaml:"primary"      envPrefix:"GT4500_PRIMARY_"`
	Secondary   StoreConfig `yaml:"secondary"    envPrefix:"GT4500_SECONDARY_"`
	FailureRate float64     `yaml:"failure_rate" env:"GT4500_FAILURE_RATE"` // 0.0 = never misfires
	Seed        int64       `yaml:"seed"         env:"GT4500_SEED"`         // 0 = time based
}

// StoreConfig defines one torpedo store.
type StoreConfig struct {
	Torpedoes int `yaml:"torpedoes" env:"TORPEDOES"`
}

// Validate checks that the loadout is usable.
func (c ShipConfig) Validate() error {
	if c.Class == "" {
		return fmt.Errorf("%w: class is empty", ErrInvalidConfig)
	}
	if c.Primary.Torpedoes < 0 {
		return fmt.Errorf("%w: primary torpedoes %d < 0", ErrInvalidConfig, c.Primary.Torpedoes)
	}
	if c.Secondary.Torpedoes < 0 {
		return fmt.Errorf("%w: secondary torpedoes %d < 0", ErrInvalidConfig, c.Secondary.Torpedoes)
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("%w: failure rate %g outside [0, 1]", ErrInvalidConfig, c.FailureRate)
	}
	return nil
}

// Readiness represents a named readiness level of the ship.
type Readiness string

const (
	ReadinessDrill   Readiness = "drill"
	ReadinessPatrol  Readiness = "patrol"
	ReadinessCombat  Readiness = "combat"
	ReadinessDamaged Readiness = "damaged"
)

// ParseReadiness validates a readiness name. An empty name is allowed and
// means "keep the loaded configuration".
func ParseReadiness(s string) (Readiness, error) {
	switch r := Readiness(s); r {
	case "", ReadinessDrill, ReadinessPatrol, ReadinessCombat, ReadinessDamaged:
		return r, nil
	default:
		return "", fmt.Errorf("config: unknown readiness %q (want drill, patrol, combat or damaged)", s)
	}
}

// FailureRateForReadiness returns the misfire rate for a readiness level.
func FailureRateForReadiness(r Readiness) float64 {
	switch r {
	case ReadinessPatrol:
		return 0.05
	case ReadinessCombat:
		return 0.1
	case ReadinessDamaged:
		return 0.5
	default:
		return 0.0
	}
}
