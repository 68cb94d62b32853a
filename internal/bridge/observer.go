package bridge

import "github.com/vovakirdan/gt4500/internal/core"

// observedStore counts fire requests passing through to a store.
type observedStore struct {
	core.TorpedoStore
	requests int
}

func (o *observedStore) Fire(count int) bool {
	o.requests++
	return o.TorpedoStore.Fire(count)
}

// take returns whether the store was asked to fire since the last call.
func (o *observedStore) take() bool {
	fired := o.requests > 0
	o.requests = 0
	return fired
}
