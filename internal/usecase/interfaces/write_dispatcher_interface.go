package interfaces

import (
	"context"
	"encoding/json"
)

type WriteKind string

const (
	WriteSet    WriteKind = "set"
	WritePatch  WriteKind = "patch"
	WriteDelete WriteKind = "delete"
)

// WriteOp is a single outbound mutation of the remote store.
type WriteOp struct {
	Kind  WriteKind       `json:"kind"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// IWriteDispatcher hands writes to the remote store without making the caller wait for them.
// An error means the write could not be queued; remote failures are tracked per path.
type IWriteDispatcher interface {
	Dispatch(ctx context.Context, op WriteOp) error
}
