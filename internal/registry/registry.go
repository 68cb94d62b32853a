// Package registry provides a global registry for ship classes.
// Ship packages register themselves in init() functions, allowing the
// bridge and CLI to discover and build ships without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gt4500/internal/core"
)

// Ship is the interface every ship class must implement.
// Ships contain pure fire-control logic with no I/O; the bridge handles
// logging, persistence and presentation.
type Ship interface {
	// Class returns a unique identifier for this ship class (e.g., "gt4500").
	// Used for CLI flags and the salvo log.
	Class() string

	// Title returns a human-readable name for display.
	Title() string

	// FireTorpedo executes a fire order and reports whether any torpedo was
	// successfully launched.
	FireTorpedo(mode core.FiringMode) bool
}

// ShipInfo contains metadata about a registered ship class.
type ShipInfo struct {
	Class string
	Title string
}

// Factory builds a ship over the given primary and secondary torpedo stores.
type Factory func(primary, secondary core.TorpedoStore) Ship

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a ship factory to the registry.
// Typically called from a ship package's init() function.
// Panics if a class with the same ID is already registered.
func Register(class string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[class]; exists {
		panic(fmt.Sprintf("registry: ship class %q already registered", class))
	}

	factories[class] = f

	// Get title by creating a temporary instance without stores
	s := f(nil, nil)
	titles[class] = s.Title()
}

// List returns information about all registered ship classes, sorted by class.
func List() []ShipInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShipInfo, 0, len(factories))
	for class := range factories {
		result = append(result, ShipInfo{
			Class: class,
			Title: titles[class],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Class < result[j].Class
	})

	return result
}

// Create builds a new ship of the given class over the two stores.
// Returns an error if the class is not registered or a store is missing.
func Create(class string, primary, secondary core.TorpedoStore) (Ship, error) {
	mu.RLock()
	f, ok := factories[class]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown ship class %q", class)
	}
	if primary == nil || secondary == nil {
		return nil, fmt.Errorf("registry: ship class %q needs both torpedo stores", class)
	}

	return f(primary, secondary), nil
}

// Exists checks if a ship class with the given ID is registered.
func Exists(class string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[class]
	return ok
}
