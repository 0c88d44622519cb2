package repository

import (
	"context"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

// ItemStoreRepository keeps the catalog at users/{tenant}/items/{id}.
type ItemStoreRepository struct {
	items storeCollection[entities.Item]
}

var _ interfaces.IItemRepository = (*ItemStoreRepository)(nil)

func NewItemStoreRepository(store interfaces.IRemoteStore, writes interfaces.IWriteDispatcher, layout Layout) *ItemStoreRepository {
	return &ItemStoreRepository{items: newStoreCollection[entities.Item](store, writes, layout.Items())}
}

func (r *ItemStoreRepository) Create(ctx context.Context, item entities.Item) error {
	return r.items.create(ctx, item)
}

func (r *ItemStoreRepository) Update(ctx context.Context, item entities.Item) error {
	return r.items.update(ctx, item)
}

func (r *ItemStoreRepository) Delete(ctx context.Context, id string) error {
	return r.items.delete(ctx, id)
}

func (r *ItemStoreRepository) List(ctx context.Context) ([]entities.Item, error) {
	return r.items.list(ctx)
}

func (r *ItemStoreRepository) Sync(onSnapshot func([]entities.Item), onError func(error)) func() {
	return r.items.sync(onSnapshot, onError)
}
