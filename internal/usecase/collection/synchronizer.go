// Package collection mirrors remote collections into ordered, id-keyed local state.
package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"construction_console/internal/usecase/interfaces"
)

// Synchronizer applies child deltas of one remote collection to an ordered map and emits the
// full snapshot after every applied delta.
//
// Callbacks run while the synchronizer lock is held, so they are never concurrent, keep delta
// order, and none runs after Close returns. They must not call back into the synchronizer.
type Synchronizer[T Identifiable[T]] struct {
	mu         sync.Mutex
	entries    *OrderedMap[T]
	onSnapshot func([]T)
	onError    func(error)
	closed     bool
}

func NewSynchronizer[T Identifiable[T]](onSnapshot func([]T), onError func(error)) *Synchronizer[T] {
	return &Synchronizer[T]{
		entries:    NewOrderedMap[T](),
		onSnapshot: onSnapshot,
		onError:    onError,
	}
}

// Apply applies one delta. Added and changed events without a value are ignored.
// A value that cannot be decoded is reported to the error callback and leaves the map untouched.
func (s *Synchronizer[T]) Apply(ev interfaces.ChildEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Type {
	case interfaces.ChildAdded, interfaces.ChildChanged:
		if isNull(ev.Value) {
			return
		}
		var v T
		if err := json.Unmarshal(ev.Value, &v); err != nil {
			s.fail(fmt.Errorf("decode child %q: %w", ev.Key, err))
			return
		}
		id := resolveID(v.EntityID(), ev.Key)
		s.entries.Set(id, v.WithID(id))
		s.emit()
	case interfaces.ChildRemoved:
		id := ev.Key
		if !isNull(ev.Value) {
			var v T
			if err := json.Unmarshal(ev.Value, &v); err == nil {
				id = resolveID(v.EntityID(), ev.Key)
			}
		}
		if s.entries.Delete(id) {
			s.emit()
		}
	default:
		s.fail(fmt.Errorf("unknown child event %q for %q", ev.Type, ev.Key))
	}
}

// Fail forwards a transport error. The map is left unchanged.
func (s *Synchronizer[T]) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.fail(err)
}

// Close stops every further callback.
func (s *Synchronizer[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Snapshot returns the current entities in insertion order.
func (s *Synchronizer[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Values()
}

func (s *Synchronizer[T]) emit() {
	if s.onSnapshot != nil {
		s.onSnapshot(s.entries.Values())
	}
}

func (s *Synchronizer[T]) fail(err error) {
	if s.onError != nil && err != nil {
		s.onError(err)
	}
}

// ReadCollection subscribes to the children of path and keeps a synchronizer fed with their
// deltas. The returned function detaches the subscription; it is safe to call more than once.
func ReadCollection[T Identifiable[T]](store interfaces.IRemoteStore, path string, onSnapshot func([]T), onError func(error)) (unsubscribe func()) {
	s := NewSynchronizer[T](onSnapshot, onError)
	stop := store.WatchChildren(path, s.Apply, s.Fail)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.Close()
			if stop != nil {
				stop()
			}
		})
	}
}

func resolveID(embedded, key string) string {
	if embedded != "" {
		return embedded
	}
	return key
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
