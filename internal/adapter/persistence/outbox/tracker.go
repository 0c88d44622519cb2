// Package outbox delivers queued writes to the remote store with retry and backoff, and keeps a
// per-path record of whether the local state has reached the store.
package outbox

import (
	"sort"
	"sync"
	"time"

	"construction_console/internal/usecase/interfaces"
)

type State string

const (
	StatePending State = "pending"
	StateSynced  State = "synced"
	StateFailed  State = "failed"
)

// PathStatus is the sync state of one store path.
type PathStatus struct {
	Path      string               `json:"path"`
	Kind      interfaces.WriteKind `json:"kind"`
	State     State                `json:"state"`
	Attempts  int                  `json:"attempts"`
	LastError string               `json:"lastError,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt"`

	inFlight int
}

type Summary struct {
	Pending int `json:"pending"`
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
}

// Tracker records the outcome of every dispatched write by path.
// A path stays pending while any write for it is queued.
type Tracker struct {
	mu    sync.RWMutex
	paths map[string]*PathStatus
	now   func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{paths: make(map[string]*PathStatus), now: time.Now}
}

func (t *Tracker) entry(path string) *PathStatus {
	st, ok := t.paths[path]
	if !ok {
		st = &PathStatus{Path: path}
		t.paths[path] = st
	}
	return st
}

func (t *Tracker) Pending(op interfaces.WriteOp) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.entry(op.Path)
	st.Kind = op.Kind
	st.State = StatePending
	st.Attempts = 0
	st.inFlight++
	st.UpdatedAt = t.now()
}

// Attempt records a failed try that will be retried.
func (t *Tracker) Attempt(path string, attempt int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.entry(path)
	st.Attempts = attempt
	if err != nil {
		st.LastError = err.Error()
	}
	st.UpdatedAt = t.now()
}

func (t *Tracker) Synced(path string, attempt int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.entry(path)
	st.Attempts = attempt
	if st.inFlight > 0 {
		st.inFlight--
	}
	if st.inFlight == 0 {
		st.State = StateSynced
		st.LastError = ""
	}
	st.UpdatedAt = t.now()
}

// Failed marks a write that will not be retried any more.
func (t *Tracker) Failed(path string, attempt int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.entry(path)
	st.Attempts = attempt
	if st.inFlight > 0 {
		st.inFlight--
	}
	st.State = StateFailed
	if err != nil {
		st.LastError = err.Error()
	}
	st.UpdatedAt = t.now()
}

func (t *Tracker) Get(path string) (PathStatus, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st, ok := t.paths[path]
	if !ok {
		return PathStatus{}, false
	}
	return *st, true
}

// Snapshot lists every tracked path, optionally limited to one state.
func (t *Tracker) Snapshot(state State) []PathStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]PathStatus, 0, len(t.paths))
	for _, st := range t.paths {
		if state != "" && st.State != state {
			continue
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (t *Tracker) Summary() Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var s Summary
	for _, st := range t.paths {
		switch st.State {
		case StatePending:
			s.Pending++
		case StateSynced:
			s.Synced++
		case StateFailed:
			s.Failed++
		}
	}
	return s
}
