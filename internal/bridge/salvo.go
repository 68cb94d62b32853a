package bridge

import (
	"time"

	"github.com/vovakirdan/gt4500/internal/core"
)

// Salvo is the outcome of one fire order.
type Salvo struct {
	Mode           core.FiringMode
	PrimaryFired   bool // Primary store was asked to fire
	SecondaryFired bool // Secondary store was asked to fire
	Success        bool // At least one torpedo left the ship
	PrimaryLeft    int
	SecondaryLeft  int
	FiredAt        time.Time
}

// Launched returns how many stores were asked to fire.
func (s Salvo) Launched() int {
	n := 0
	if s.PrimaryFired {
		n++
	}
	if s.SecondaryFired {
		n++
	}
	return n
}

// SalvoRecord is the data handed to a SalvoRecorder.
type SalvoRecord struct {
	SessionID string
	Class     string
	Salvo     Salvo
}

// SalvoRecorder persists salvos.
// Implemented by the storage package so the bridge does not depend on it.
type SalvoRecorder interface {
	RecordSalvo(rec SalvoRecord) error
}

// StoreStatus describes one torpedo store.
type StoreStatus struct {
	Count    int
	Capacity int
}

// Status is a snapshot of the bridge.
type Status struct {
	Class            string
	Title            string
	Primary          StoreStatus
	Secondary        StoreStatus
	PrimaryPreferred bool
	Salvos           int
	Hits             int
}
