package interfaces

import (
	"context"

	"construction_console/internal/domain/entities"
)

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) error
	Update(ctx context.Context, c entities.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Customer, error)
	Sync(onSnapshot func([]entities.Customer), onError func(error)) (unsubscribe func())
}
