// Package store provides the remote key-value tree backends: in-memory, Redis and DynamoDB.
//
// Every backend keeps leaves addressed by (parent, key), where key is the last path segment.
// Collections are the parents; whole-value documents such as users/{tenant}/info are leaves
// of the tenant root.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidPath  = errors.New("invalid store path")
	ErrInvalidValue = errors.New("value is not valid JSON")
	ErrPatchTarget  = errors.New("patch target is not an object")
)

// Clean trims surrounding slashes and collapses empty segments.
func Clean(path string) string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return Clean(strings.Join(segments, "/"))
}

// Split returns the parent path and last segment of path.
func Split(path string) (parent, key string, err error) {
	path = Clean(path)
	if path == "" {
		return "", "", ErrInvalidPath
	}
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path, nil
	}
	return path[:i], path[i+1:], nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func validate(raw json.RawMessage) error {
	if !json.Valid(raw) {
		return ErrInvalidValue
	}
	return nil
}

// mergeFields shallow-merges fields into current. A null field removes the key.
func mergeFields(current, fields json.RawMessage) (json.RawMessage, error) {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(fields, &patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatchTarget, err)
	}
	base := map[string]json.RawMessage{}
	if !isNull(current) {
		if err := json.Unmarshal(current, &base); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPatchTarget, err)
		}
	}
	for k, v := range patch {
		if isNull(v) {
			delete(base, k)
			continue
		}
		base[k] = v
	}
	return json.Marshal(base)
}

// assemble renders children as a JSON object keyed by child key.
func assemble(children map[string]json.RawMessage) (json.RawMessage, error) {
	if len(children) == 0 {
		return nil, nil
	}
	return json.Marshal(children)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
