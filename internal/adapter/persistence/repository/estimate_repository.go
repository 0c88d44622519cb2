package repository

import (
	"context"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

// EstimateStoreRepository persists estimates at users/{tenant}/estimates/{id}.
// Both create and update write the estimate whole.
type EstimateStoreRepository struct {
	estimates storeCollection[entities.Estimate]
}

var _ interfaces.IEstimateRepository = (*EstimateStoreRepository)(nil)

func NewEstimateStoreRepository(store interfaces.IRemoteStore, writes interfaces.IWriteDispatcher, layout Layout) *EstimateStoreRepository {
	return &EstimateStoreRepository{estimates: newStoreCollection[entities.Estimate](store, writes, layout.Estimates())}
}

func (r *EstimateStoreRepository) Create(ctx context.Context, e entities.Estimate) error {
	return r.estimates.create(ctx, e)
}

func (r *EstimateStoreRepository) Update(ctx context.Context, e entities.Estimate) error {
	return r.estimates.update(ctx, e)
}

func (r *EstimateStoreRepository) Delete(ctx context.Context, id string) error {
	return r.estimates.delete(ctx, id)
}

func (r *EstimateStoreRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	return r.estimates.list(ctx)
}

func (r *EstimateStoreRepository) Sync(onSnapshot func([]entities.Estimate), onError func(error)) func() {
	return r.estimates.sync(onSnapshot, onError)
}
