package repository

import (
	"context"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

type CustomerStoreRepository struct {
	customers storeCollection[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerStoreRepository)(nil)

func NewCustomerStoreRepository(store interfaces.IRemoteStore, writes interfaces.IWriteDispatcher, layout Layout) *CustomerStoreRepository {
	return &CustomerStoreRepository{customers: newStoreCollection[entities.Customer](store, writes, layout.Customers())}
}

func (r *CustomerStoreRepository) Create(ctx context.Context, c entities.Customer) error {
	return r.customers.create(ctx, c)
}

// Update replaces the stored customer with c.
func (r *CustomerStoreRepository) Update(ctx context.Context, c entities.Customer) error {
	return r.customers.update(ctx, c)
}

func (r *CustomerStoreRepository) Delete(ctx context.Context, id string) error {
	return r.customers.delete(ctx, id)
}

func (r *CustomerStoreRepository) List(ctx context.Context) ([]entities.Customer, error) {
	return r.customers.list(ctx)
}

func (r *CustomerStoreRepository) Sync(onSnapshot func([]entities.Customer), onError func(error)) func() {
	return r.customers.sync(onSnapshot, onError)
}
