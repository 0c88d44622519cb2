package interfaces

import (
	"context"
	"encoding/json"
)

// ChildEventType names a per-child delta on a watched collection.
type ChildEventType string

const (
	ChildAdded   ChildEventType = "added"
	ChildChanged ChildEventType = "changed"
	ChildRemoved ChildEventType = "removed"
)

// ChildEvent is one delta for a single child of a watched path.
// Value is the stored JSON of the child; for removals it is the last known value, if any.
type ChildEvent struct {
	Type  ChildEventType  `json:"type"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value,omitempty"`
}

// IRemoteStore abstracts the networked key-value tree the console mirrors.
//
// Paths are slash separated and relative to the store root. Subscriptions deliver their
// callbacks sequentially; the returned function detaches them and is safe to call twice.
//   - Get returns nil when nothing is stored at path.
//   - Watch delivers the current value first (nil when absent), then every replacement.
//   - WatchChildren delivers an added event per existing child, then live deltas.
type IRemoteStore interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Watch(path string, onValue func(json.RawMessage), onError func(error)) (unsubscribe func())
	WatchChildren(path string, onEvent func(ChildEvent), onError func(error)) (unsubscribe func())
	Write(ctx context.Context, path string, value json.RawMessage) error
	Patch(ctx context.Context, path string, fields json.RawMessage) error
	Delete(ctx context.Context, path string) error
}
