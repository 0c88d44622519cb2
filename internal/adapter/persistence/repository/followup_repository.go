package repository

import (
	"context"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

type FollowUpStoreRepository struct {
	followUps storeCollection[entities.FollowUp]
}

var _ interfaces.IFollowUpRepository = (*FollowUpStoreRepository)(nil)

func NewFollowUpStoreRepository(store interfaces.IRemoteStore, writes interfaces.IWriteDispatcher, layout Layout) *FollowUpStoreRepository {
	return &FollowUpStoreRepository{followUps: newStoreCollection[entities.FollowUp](store, writes, layout.FollowUps())}
}

func (r *FollowUpStoreRepository) Create(ctx context.Context, f entities.FollowUp) error {
	return r.followUps.create(ctx, f)
}

func (r *FollowUpStoreRepository) Update(ctx context.Context, f entities.FollowUp) error {
	return r.followUps.update(ctx, f)
}

func (r *FollowUpStoreRepository) Delete(ctx context.Context, id string) error {
	return r.followUps.delete(ctx, id)
}

func (r *FollowUpStoreRepository) List(ctx context.Context) ([]entities.FollowUp, error) {
	return r.followUps.list(ctx)
}

func (r *FollowUpStoreRepository) Sync(onSnapshot func([]entities.FollowUp), onError func(error)) func() {
	return r.followUps.sync(onSnapshot, onError)
}
