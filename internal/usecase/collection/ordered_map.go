package collection

import "container/list"

// Identifiable is implemented by every entity that lives in a keyed collection.
type Identifiable[T any] interface {
	EntityID() string
	WithID(id string) T
}

type cloner[T any] interface {
	Clone() T
}

// copyOf returns a copy of v that shares no slices with it when T knows how to clone itself.
func copyOf[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// OrderedMap is an id-keyed map that iterates in insertion order.
// Overwriting an existing id keeps its position. It is not safe for concurrent use.
type OrderedMap[T any] struct {
	order *list.List
	index map[string]*list.Element
}

type orderedEntry[T any] struct {
	id    string
	value T
}

func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{order: list.New(), index: make(map[string]*list.Element)}
}

func (m *OrderedMap[T]) Set(id string, v T) {
	if el, ok := m.index[id]; ok {
		el.Value.(*orderedEntry[T]).value = v
		return
	}
	m.index[id] = m.order.PushBack(&orderedEntry[T]{id: id, value: v})
}

func (m *OrderedMap[T]) Get(id string) (T, bool) {
	el, ok := m.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return el.Value.(*orderedEntry[T]).value, true
}

func (m *OrderedMap[T]) Delete(id string) bool {
	el, ok := m.index[id]
	if !ok {
		return false
	}
	m.order.Remove(el)
	delete(m.index, id)
	return true
}

func (m *OrderedMap[T]) Len() int {
	return len(m.index)
}

// Values returns copies of every value in insertion order.
func (m *OrderedMap[T]) Values() []T {
	out := make([]T, 0, len(m.index))
	for el := m.order.Front(); el != nil; el = el.Next() {
		out = append(out, copyOf(el.Value.(*orderedEntry[T]).value))
	}
	return out
}

func (m *OrderedMap[T]) Clear() {
	m.order.Init()
	m.index = make(map[string]*list.Element)
}
