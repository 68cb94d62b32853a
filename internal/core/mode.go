// Package core provides the shared vocabulary of the fire-control system.
// It contains no external dependencies so that ship logic stays pure and
// testable.
package core

import (
	"fmt"
	"strings"
)

// FiringMode selects how many torpedo stores a fire order engages.
type FiringMode int

const (
	// FiringModeSingle fires one torpedo, alternating between stores.
	FiringModeSingle FiringMode = iota
	// FiringModeAll fires from every store that still holds torpedoes.
	FiringModeAll
)

// String returns the lowercase name used on the command line and in the salvo log.
func (m FiringMode) String() string {
	switch m {
	case FiringModeSingle:
		return "single"
	case FiringModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseFiringMode converts a mode name (case-insensitive) to a FiringMode.
func ParseFiringMode(s string) (FiringMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "s":
		return FiringModeSingle, nil
	case "all", "a":
		return FiringModeAll, nil
	default:
		return 0, fmt.Errorf("core: unknown firing mode %q", s)
	}
}
