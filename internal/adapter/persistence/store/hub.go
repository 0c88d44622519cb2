package store

import (
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"

	"construction_console/internal/usecase/interfaces"
)

// change describes what happened to one leaf.
type change struct {
	parent  string
	key     string
	value   json.RawMessage
	existed bool
	deleted bool
}

func (c change) childEvent() interfaces.ChildEvent {
	switch {
	case c.deleted:
		return interfaces.ChildEvent{Type: interfaces.ChildRemoved, Key: c.key, Value: c.value}
	case c.existed:
		return interfaces.ChildEvent{Type: interfaces.ChildChanged, Key: c.key, Value: c.value}
	default:
		return interfaces.ChildEvent{Type: interfaces.ChildAdded, Key: c.key, Value: c.value}
	}
}

type subscription struct {
	onValue func(json.RawMessage)
	onEvent func(interfaces.ChildEvent)
	onError func(error)
	closed  atomic.Bool
}

func (s *subscription) value(v json.RawMessage) {
	if !s.closed.Load() && s.onValue != nil {
		s.onValue(v)
	}
}

func (s *subscription) event(ev interfaces.ChildEvent) {
	if !s.closed.Load() && s.onEvent != nil {
		s.onEvent(ev)
	}
}

func (s *subscription) fail(err error) {
	if !s.closed.Load() && s.onError != nil {
		s.onError(err)
	}
}

// hub fans committed changes out to in-process subscribers.
//
// Deliveries happen while deliverMu is held so that every subscriber sees changes in commit
// order. Subscriber callbacks must not call back into the store that owns the hub.
type hub struct {
	mu        sync.Mutex
	deliverMu sync.Mutex
	next      uint64
	values    map[string]map[uint64]*subscription
	children  map[string]map[uint64]*subscription
}

func newHub() *hub {
	return &hub{
		values:   make(map[string]map[uint64]*subscription),
		children: make(map[string]map[uint64]*subscription),
	}
}

func (h *hub) add(index map[string]map[uint64]*subscription, path string, sub *subscription) func() {
	h.mu.Lock()
	h.next++
	id := h.next
	if index[path] == nil {
		index[path] = make(map[uint64]*subscription)
	}
	index[path][id] = sub
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.closed.Store(true)
			h.mu.Lock()
			delete(index[path], id)
			if len(index[path]) == 0 {
				delete(index, path)
			}
			h.mu.Unlock()
		})
	}
}

func (h *hub) watchValue(path string, sub *subscription) func() {
	return h.add(h.values, path, sub)
}

func (h *hub) watchChildren(path string, sub *subscription) func() {
	return h.add(h.children, path, sub)
}

func (h *hub) subscribers(index map[string]map[uint64]*subscription, path string) []*subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := index[path]
	ids := make([]uint64, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*subscription, 0, len(ids))
	for _, id := range ids {
		out = append(out, subs[id])
	}
	return out
}

// deliver must be called with deliverMu held.
func (h *hub) deliver(changes []change) {
	for _, c := range changes {
		path := Join(c.parent, c.key)
		for _, sub := range h.subscribers(h.values, path) {
			if c.deleted {
				sub.value(nil)
			} else {
				sub.value(c.value)
			}
		}
		ev := c.childEvent()
		for _, sub := range h.subscribers(h.children, c.parent) {
			sub.event(ev)
		}
	}
}
