package collection

import "sync"

// View is the local, read-mostly copy of a collection.
// Snapshots from the synchronizer replace it wholesale; use cases apply optimistic puts and
// deletes in between. Every read returns copies.
type View[T Identifiable[T]] struct {
	mu      sync.RWMutex
	entries *OrderedMap[T]
	ready   bool
}

func NewView[T Identifiable[T]]() *View[T] {
	return &View[T]{entries: NewOrderedMap[T]()}
}

// Replace swaps the content for a snapshot and marks the view as loaded.
func (v *View[T]) Replace(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries.Clear()
	for _, it := range items {
		v.entries.Set(it.EntityID(), copyOf(it))
	}
	v.ready = true
}

func (v *View[T]) Put(item T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries.Set(item.EntityID(), copyOf(item))
}

func (v *View[T]) Delete(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.entries.Delete(id)
}

func (v *View[T]) Get(id string) (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	it, ok := v.entries.Get(id)
	if !ok {
		return it, false
	}
	return copyOf(it), true
}

func (v *View[T]) List() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.entries.Values()
}

// Find returns the first entity, in insertion order, that satisfies match.
func (v *View[T]) Find(match func(T) bool) (T, bool) {
	for _, it := range v.List() {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (v *View[T]) Filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, it := range v.List() {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

func (v *View[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.entries.Len()
}

// Ready reports whether at least one snapshot has been received.
func (v *View[T]) Ready() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ready
}
