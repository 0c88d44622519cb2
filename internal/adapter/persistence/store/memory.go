package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"construction_console/internal/usecase/interfaces"
)

// MemoryStore is an in-process tree. Deliveries are synchronous: when a write returns, every
// subscriber has already seen it.
type MemoryStore struct {
	mu    sync.RWMutex
	nodes map[string]map[string]json.RawMessage
	hub   *hub
}

var _ interfaces.IRemoteStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes: make(map[string]map[string]json.RawMessage),
		hub:   newHub(),
	}
}

func (s *MemoryStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parent, key, err := Split(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.nodes[parent][key]; ok {
		return clone(v), nil
	}
	return assemble(s.nodes[Clean(path)])
}

func (s *MemoryStore) Watch(path string, onValue func(json.RawMessage), onError func(error)) func() {
	parent, key, err := Split(path)
	sub := &subscription{onValue: onValue, onError: onError}
	if err != nil {
		sub.fail(err)
		return func() {}
	}

	s.mu.RLock()
	unsubscribe := s.hub.watchValue(Join(parent, key), sub)
	current := clone(s.nodes[parent][key])
	s.hub.deliverMu.Lock()
	s.mu.RUnlock()
	defer s.hub.deliverMu.Unlock()

	sub.value(current)
	return unsubscribe
}

func (s *MemoryStore) WatchChildren(path string, onEvent func(interfaces.ChildEvent), onError func(error)) func() {
	path = Clean(path)
	sub := &subscription{onEvent: onEvent, onError: onError}

	s.mu.RLock()
	unsubscribe := s.hub.watchChildren(path, sub)
	children := s.nodes[path]
	initial := make([]interfaces.ChildEvent, 0, len(children))
	for _, k := range sortedKeys(children) {
		initial = append(initial, interfaces.ChildEvent{Type: interfaces.ChildAdded, Key: k, Value: clone(children[k])})
	}
	s.hub.deliverMu.Lock()
	s.mu.RUnlock()
	defer s.hub.deliverMu.Unlock()

	for _, ev := range initial {
		sub.event(ev)
	}
	return unsubscribe
}

func (s *MemoryStore) Write(ctx context.Context, path string, value json.RawMessage) error {
	if isNull(value) {
		return s.Delete(ctx, path)
	}
	if err := validate(value); err != nil {
		return err
	}
	return s.commit(ctx, path, func(parent, key string) ([]change, error) {
		return []change{s.set(parent, key, clone(value))}, nil
	})
}

func (s *MemoryStore) Patch(ctx context.Context, path string, fields json.RawMessage) error {
	if err := validate(fields); err != nil {
		return err
	}
	return s.commit(ctx, path, func(parent, key string) ([]change, error) {
		merged, err := mergeFields(s.nodes[parent][key], fields)
		if err != nil {
			return nil, err
		}
		return []change{s.set(parent, key, merged)}, nil
	})
}

// Delete removes the leaf at path together with every leaf below it.
func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	return s.commit(ctx, path, func(parent, key string) ([]change, error) {
		var changes []change
		full := Join(parent, key)
		for p := range s.nodes {
			if p != full && !strings.HasPrefix(p, full+"/") {
				continue
			}
			for _, k := range sortedKeys(s.nodes[p]) {
				changes = append(changes, change{parent: p, key: k, value: s.nodes[p][k], existed: true, deleted: true})
			}
			delete(s.nodes, p)
		}
		if old, ok := s.nodes[parent][key]; ok {
			delete(s.nodes[parent], key)
			if len(s.nodes[parent]) == 0 {
				delete(s.nodes, parent)
			}
			changes = append(changes, change{parent: parent, key: key, value: old, existed: true, deleted: true})
		}
		return changes, nil
	})
}

func (s *MemoryStore) commit(ctx context.Context, path string, mutate func(parent, key string) ([]change, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	parent, key, err := Split(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changes, err := mutate(parent, key)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.hub.deliverMu.Lock()
	s.mu.Unlock()
	defer s.hub.deliverMu.Unlock()

	s.hub.deliver(changes)
	return nil
}

// set must be called with mu held.
func (s *MemoryStore) set(parent, key string, value json.RawMessage) change {
	children, ok := s.nodes[parent]
	if !ok {
		children = make(map[string]json.RawMessage)
		s.nodes[parent] = children
	}
	_, existed := children[key]
	children[key] = value
	return change{parent: parent, key: key, value: clone(value), existed: existed}
}

func clone(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
