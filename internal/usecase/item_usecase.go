package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidItemID   = errors.New("invalid item id")
	ErrInvalidItemName = errors.New("item name is required")
	ErrInvalidGSTRate  = errors.New("gst rate must be one of 0, 5, 12, 18, 28")
	ErrInvalidSaleRate = errors.New("sale rate must not be negative")
)

type IItemUseCase interface {
	Create(ctx context.Context, item entities.Item) (entities.Item, error)
	Update(ctx context.Context, item entities.Item) (entities.Item, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context) []entities.Item
}

type ItemUseCase struct {
	ws   *Workspace
	repo interfaces.IItemRepository
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(ws *Workspace, repo interfaces.IItemRepository) *ItemUseCase {
	return &ItemUseCase{ws: ws, repo: repo}
}

func validateItem(item entities.Item) (entities.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return item, ErrInvalidItemName
	}
	if !entities.IsValidGSTRate(item.GSTRate) {
		return item, ErrInvalidGSTRate
	}
	if item.SaleRate < 0 {
		return item, ErrInvalidSaleRate
	}
	if item.Type != entities.ItemTypeService {
		item.Type = entities.ItemTypeGoods
	}
	return item, nil
}

func (u *ItemUseCase) Create(ctx context.Context, item entities.Item) (entities.Item, error) {
	item, err := validateItem(item)
	if err != nil {
		return entities.Item{}, err
	}
	item.ID = uuid.NewString()

	u.ws.Items.Put(item)
	if err := u.repo.Create(ctx, item); err != nil {
		return item, err
	}
	return item, nil
}

func (u *ItemUseCase) Update(ctx context.Context, item entities.Item) (entities.Item, error) {
	if _, err := u.GetByID(ctx, item.ID); err != nil {
		return entities.Item{}, err
	}
	item, err := validateItem(item)
	if err != nil {
		return entities.Item{}, err
	}

	u.ws.Items.Put(item)
	if err := u.repo.Update(ctx, item); err != nil {
		return item, err
	}
	return item, nil
}

func (u *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.ws.Items.Delete(item.ID)
	return u.repo.Delete(ctx, item.ID)
}

func (u *ItemUseCase) GetByID(_ context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidItemID
	}
	item, ok := u.ws.Items.Get(id)
	if !ok {
		return entities.Item{}, ErrItemNotFound
	}
	return item, nil
}

func (u *ItemUseCase) List(_ context.Context) []entities.Item {
	return u.ws.Items.List()
}
