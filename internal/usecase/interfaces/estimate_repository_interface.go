package interfaces

import (
	"context"

	"construction_console/internal/domain/entities"
)

// IEstimateRepository maps estimates onto the remote store.
//
// Writes are queued and return once accepted:
//   - Create replaces the whole value at /estimates/{id}
//   - Update merges the estimate's fields into the stored value
//   - Sync mirrors the collection through child deltas
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) error
	Update(ctx context.Context, e entities.Estimate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Estimate, error)
	Sync(onSnapshot func([]entities.Estimate), onError func(error)) (unsubscribe func())
}
