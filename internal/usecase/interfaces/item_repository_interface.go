package interfaces

import (
	"context"

	"construction_console/internal/domain/entities"
)

// IItemRepository maps catalog items onto /items.
type IItemRepository interface {
	Create(ctx context.Context, item entities.Item) error
	Update(ctx context.Context, item entities.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Item, error)
	Sync(onSnapshot func([]entities.Item), onError func(error)) (unsubscribe func())
}
