// Package bridge runs fire-control sessions: it builds a ship over real
// torpedo stores, executes fire orders, and logs and records every salvo.
package bridge

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gt4500/internal/config"
	"github.com/vovakirdan/gt4500/internal/core"
	"github.com/vovakirdan/gt4500/internal/registry"
	"github.com/vovakirdan/gt4500/internal/torpedo"
)

// Bridge owns one ship and its stores. Not safe for concurrent use; each
// console or SSH session gets its own bridge.
type Bridge struct {
	sessionID string
	ship      registry.Ship
	primary   *torpedo.Store
	secondary *torpedo.Store
	observedP *observedStore
	observedS *observedStore
	recorder  SalvoRecorder
	logger    *log.Logger
	history   []Salvo
	now       func() time.Time
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithRecorder sets where salvos are persisted.
func WithRecorder(r SalvoRecorder) Option {
	return func(b *Bridge) {
		b.recorder = r
	}
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(b *Bridge) {
		if id != "" {
			b.sessionID = id
		}
	}
}

// New creates a bridge for the ship class and loadout in cfg.
func New(cfg config.ShipConfig, opts ...Option) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	b := &Bridge{
		sessionID: uuid.NewString(),
		primary:   torpedo.NewStore(cfg.Primary.Torpedoes, cfg.FailureRate, rng),
		secondary: torpedo.NewStore(cfg.Secondary.Torpedoes, cfg.FailureRate, rng),
		logger:    log.New(io.Discard),
		now:       time.Now,
	}
	b.observedP = &observedStore{TorpedoStore: b.primary}
	b.observedS = &observedStore{TorpedoStore: b.secondary}

	for _, opt := range opts {
		opt(b)
	}

	ship, err := registry.Create(cfg.Class, b.observedP, b.observedS)
	if err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	b.ship = ship

	b.logger.Debug("bridge ready",
		"session", b.sessionID,
		"class", cfg.Class,
		"primary", cfg.Primary.Torpedoes,
		"secondary", cfg.Secondary.Torpedoes,
		"failure_rate", cfg.FailureRate,
	)
	return b, nil
}

// Fire executes one fire order and returns its outcome.
// Recording failures are logged and do not affect the result.
func (b *Bridge) Fire(mode core.FiringMode) Salvo {
	success := b.ship.FireTorpedo(mode)

	salvo := Salvo{
		Mode:           mode,
		PrimaryFired:   b.observedP.take(),
		SecondaryFired: b.observedS.take(),
		Success:        success,
		PrimaryLeft:    b.primary.Count(),
		SecondaryLeft:  b.secondary.Count(),
		FiredAt:        b.now(),
	}
	b.history = append(b.history, salvo)

	kv := []any{
		"mode", mode,
		"primary", salvo.PrimaryFired,
		"secondary", salvo.SecondaryFired,
		"left", fmt.Sprintf("%d/%d", salvo.PrimaryLeft, salvo.SecondaryLeft),
	}
	if success {
		b.logger.Debug("torpedo away", kv...)
	} else {
		b.logger.Warn("fire order failed", kv...)
	}

	if b.recorder != nil {
		rec := SalvoRecord{SessionID: b.sessionID, Class: b.ship.Class(), Salvo: salvo}
		if err := b.recorder.RecordSalvo(rec); err != nil {
			b.logger.Error("could not record salvo", "error", err)
		}
	}

	return salvo
}

// Reload restocks both stores. The alternation state of the ship is kept.
func (b *Bridge) Reload() {
	b.primary.Reload()
	b.secondary.Reload()
	b.logger.Info("stores reloaded", "primary", b.primary.Count(), "secondary", b.secondary.Count())
}

// Status returns a snapshot of the ship and its stores.
func (b *Bridge) Status() Status {
	st := Status{
		Class:            b.ship.Class(),
		Title:            b.ship.Title(),
		Primary:          StoreStatus{Count: b.primary.Count(), Capacity: b.primary.Capacity()},
		Secondary:        StoreStatus{Count: b.secondary.Count(), Capacity: b.secondary.Capacity()},
		PrimaryPreferred: true,
		Salvos:           len(b.history),
	}
	if p, ok := b.ship.(interface{ PrimaryPreferred() bool }); ok {
		st.PrimaryPreferred = p.PrimaryPreferred()
	}
	for _, s := range b.history {
		if s.Success {
			st.Hits++
		}
	}
	return st
}

// History returns the salvos fired in this session, oldest first.
func (b *Bridge) History() []Salvo {
	out := make([]Salvo, len(b.history))
	copy(out, b.history)
	return out
}

// SessionID returns the ID under which salvos are recorded.
func (b *Bridge) SessionID() string {
	return b.sessionID
}
