// Package torpedo provides a finite torpedo magazine with a misfire rate.
package torpedo

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gt4500/internal/core"
)

// Store holds a finite number of torpedoes.
// Invariant: 0 <= count <= capacity. Not safe for concurrent use.
type Store struct {
	count       int
	capacity    int
	failureRate float64
	rng         *rand.Rand
}

var _ core.TorpedoStore = (*Store)(nil)

// NewStore returns a fully loaded store.
// A negative count is treated as zero and failureRate is clamped to [0, 1].
// A nil rng is replaced by a time-seeded one.
func NewStore(count int, failureRate float64, rng *rand.Rand) *Store {
	if count < 0 {
		count = 0
	}
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		count:       count,
		capacity:    count,
		failureRate: failureRate,
		rng:         rng,
	}
}

// Fire launches n torpedoes.
// Requests for fewer than one or more torpedoes than remain are refused
// without consuming anything. A misfire also consumes nothing.
func (s *Store) Fire(n int) bool {
	if n < 1 || n > s.count {
		return false
	}

	if s.failureRate > 0 && s.rng.Float64() < s.failureRate {
		return false
	}

	s.count -= n
	return true
}

// IsEmpty reports whether no torpedoes remain.
func (s *Store) IsEmpty() bool {
	return s.count <= 0
}

// Count returns the number of torpedoes left.
func (s *Store) Count() int {
	return s.count
}

// Capacity returns the number of torpedoes a full store holds.
func (s *Store) Capacity() int {
	return s.capacity
}

// FailureRate returns the probability that a fire attempt misfires.
func (s *Store) FailureRate() float64 {
	return s.failureRate
}

// Reload restocks the store to capacity.
func (s *Store) Reload() {
	s.count = s.capacity
}
