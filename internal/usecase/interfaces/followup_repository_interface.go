package interfaces

import (
	"context"

	"construction_console/internal/domain/entities"
)

type IFollowUpRepository interface {
	Create(ctx context.Context, f entities.FollowUp) error
	Update(ctx context.Context, f entities.FollowUp) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.FollowUp, error)
	Sync(onSnapshot func([]entities.FollowUp), onError func(error)) (unsubscribe func())
}
