package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"construction_console/internal/adapter/persistence/store"
)

const (
	itemsPath     = "items"
	estimatesPath = "estimates"
	customersPath = "customers"
	followUpsPath = "followups"
	infoPath      = "info"
	logoPath      = "logo"
)

var ErrMissingID = errors.New("entity has no id")

// Layout resolves the store paths of one tenant: users/{tenant}/...
type Layout struct {
	root string
}

func NewLayout(tenantID string) Layout {
	return Layout{root: store.Join("users", tenantID)}
}

func (l Layout) Root() string { return l.root }

func (l Layout) Items() string     { return store.Join(l.root, itemsPath) }
func (l Layout) Estimates() string { return store.Join(l.root, estimatesPath) }
func (l Layout) Customers() string { return store.Join(l.root, customersPath) }
func (l Layout) FollowUps() string { return store.Join(l.root, followUpsPath) }
func (l Layout) Info() string      { return store.Join(l.root, infoPath) }
func (l Layout) Logo() string      { return store.Join(l.root, logoPath) }

func childPath(parent, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: %q", ErrMissingID, id)
	}
	return store.Join(parent, id), nil
}

func encode(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}
