// Package gt4500 implements fire control for the GT4500 starship.
//
// The ship carries two torpedo stores. A SINGLE order fires one torpedo and
// alternates between stores, falling back to whichever store still has
// torpedoes. An ALL order fires every store that is not empty.
package gt4500

import (
	"github.com/vovakirdan/gt4500/internal/core"
	"github.com/vovakirdan/gt4500/internal/registry"
)

// Class is the registry identifier of the GT4500.
const Class = "gt4500"

func init() {
	registry.Register(Class, func(primary, secondary core.TorpedoStore) registry.Ship {
		return New(primary, secondary)
	})
}

// Ship is the GT4500 fire controller.
// It is not safe for concurrent use; callers serialize fire orders.
type Ship struct {
	primary   core.TorpedoStore
	secondary core.TorpedoStore

	// primaryFiredLast is false while the primary store is preferred.
	primaryFiredLast bool
}

// New creates a GT4500 over the given torpedo stores.
func New(primary, secondary core.TorpedoStore) *Ship {
	return &Ship{
		primary:   primary,
		secondary: secondary,
	}
}

// Class returns the ship class identifier.
func (s *Ship) Class() string { return Class }

// Title returns the display name of the ship.
func (s *Ship) Title() string { return "GT4500 Starship" }

// FireTorpedo executes a fire order and reports whether at least one torpedo
// was launched. Empty stores are never asked to fire.
func (s *Ship) FireTorpedo(mode core.FiringMode) bool {
	switch mode {
	case core.FiringModeSingle:
		return s.fireSingle()
	case core.FiringModeAll:
		return s.fireAll()
	default:
		return false
	}
}

func (s *Ship) fireSingle() bool {
	if !s.primaryFiredLast {
		if !s.primary.IsEmpty() {
			s.primaryFiredLast = true
			return s.primary.Fire(1)
		}
		// Primary is dry; preference stays on primary for the next order.
		if !s.secondary.IsEmpty() {
			return s.secondary.Fire(1)
		}
		return false
	}

	if !s.secondary.IsEmpty() {
		s.primaryFiredLast = false
		return s.secondary.Fire(1)
	}
	if !s.primary.IsEmpty() {
		return s.primary.Fire(1)
	}
	return false
}

func (s *Ship) fireAll() bool {
	primaryReady := !s.primary.IsEmpty()
	secondaryReady := !s.secondary.IsEmpty()

	success := false
	if primaryReady && s.primary.Fire(1) {
		success = true
	}
	if secondaryReady && s.secondary.Fire(1) {
		success = true
	}

	// A one-sided salvo moves the preference like a single shot would.
	switch {
	case primaryReady && !secondaryReady:
		s.primaryFiredLast = true
	case secondaryReady && !primaryReady:
		s.primaryFiredLast = false
	}

	return success
}

// PrimaryPreferred reports whether the next SINGLE order tries the primary
// store first.
func (s *Ship) PrimaryPreferred() bool {
	return !s.primaryFiredLast
}
