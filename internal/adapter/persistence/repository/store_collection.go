package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"construction_console/internal/usecase/collection"
	"construction_console/internal/usecase/interfaces"
)

// storeCollection maps one entity type onto the children of a store path.
// Reads go to the store directly; writes are handed to the dispatcher.
type storeCollection[T collection.Identifiable[T]] struct {
	store  interfaces.IRemoteStore
	writes interfaces.IWriteDispatcher
	path   string
}

func newStoreCollection[T collection.Identifiable[T]](store interfaces.IRemoteStore, writes interfaces.IWriteDispatcher, path string) storeCollection[T] {
	return storeCollection[T]{store: store, writes: writes, path: path}
}

// put writes the whole entity, id included. Fields the caller cleared are written as empty
// values so the echo from the store matches the local state.
func (c storeCollection[T]) put(ctx context.Context, v T) error {
	path, err := childPath(c.path, v.EntityID())
	if err != nil {
		return err
	}
	raw, err := encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return c.writes.Dispatch(ctx, interfaces.WriteOp{Kind: interfaces.WriteSet, Path: path, Value: raw})
}

func (c storeCollection[T]) create(ctx context.Context, v T) error {
	return c.put(ctx, v)
}

func (c storeCollection[T]) update(ctx context.Context, v T) error {
	return c.put(ctx, v)
}

func (c storeCollection[T]) delete(ctx context.Context, id string) error {
	path, err := childPath(c.path, id)
	if err != nil {
		return err
	}
	return c.writes.Dispatch(ctx, interfaces.WriteOp{Kind: interfaces.WriteDelete, Path: path})
}

// list reads the collection once, ordered by key.
func (c storeCollection[T]) list(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.path)
	if err != nil {
		return nil, err
	}
	if empty(raw) {
		return []T{}, nil
	}
	var children map[string]json.RawMessage
	if err := json.Unmarshal(raw, &children); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		var v T
		if err := json.Unmarshal(children[k], &v); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.path, k, err)
		}
		id := v.EntityID()
		if id == "" {
			id = k
		}
		out = append(out, v.WithID(id))
	}
	return out, nil
}

func (c storeCollection[T]) sync(onSnapshot func([]T), onError func(error)) func() {
	return collection.ReadCollection[T](c.store, c.path, onSnapshot, onError)
}
