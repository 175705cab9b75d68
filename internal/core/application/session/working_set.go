// Package session holds per-session mutable state: the working set of orders
// the operator is looking at and the resolved template configuration.
//
// The service assumes one operator session: user-triggered operations run to
// completion one at a time. The mutexes here exist only because the periodic
// refresh job touches the same state from its own goroutine.
package session

import (
	"sync"

	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
)

// WorkingSet is the in-memory collection of orders the coordinator operates
// on. Status transitions are applied to it optimistically, before the store
// confirms them; a Snapshot taken beforehand is what a failed persistence
// call restores.
//
// The set is a cache, not a store: it is replaced wholesale by refetches and
// carries no durability guarantees.
type WorkingSet struct {
	mu     sync.Mutex
	orders []*order.Order
}

// NewWorkingSet creates an empty working set.
func NewWorkingSet() *WorkingSet {
	return &WorkingSet{}
}

// Replace swaps in a freshly fetched order collection, newest first.
func (ws *WorkingSet) Replace(orders []*order.Order) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.orders = orders
}

// Get returns the live order with the given id, or nil when the working set
// does not contain it (it may have been deleted by another client since the
// last refetch). The returned pointer is the set's own instance: mutating it
// is exactly how the optimistic update works.
func (ws *WorkingSet) Get(id kernel.UUID) *order.Order {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	for _, o := range ws.orders {
		if o.ID().IsEqual(id) {
			return o
		}
	}
	return nil
}

// All returns the current orders in working-set order.
func (ws *WorkingSet) All() []*order.Order {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	out := make([]*order.Order, len(ws.orders))
	copy(out, ws.orders)
	return out
}

// Len returns the number of orders currently held.
func (ws *WorkingSet) Len() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.orders)
}

// Snapshot returns a deep copy of the current collection. Taken right before
// an optimistic update so the pre-transition state can be restored.
func (ws *WorkingSet) Snapshot() []*order.Order {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	snapshot := make([]*order.Order, len(ws.orders))
	for i, o := range ws.orders {
		snapshot[i] = o.Clone()
	}
	return snapshot
}

// Restore replaces the collection with a previously taken snapshot,
// rolling back every in-memory change made since.
func (ws *WorkingSet) Restore(snapshot []*order.Order) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.orders = snapshot
}
