package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"construction_console/internal/domain/entities"
	mock_interfaces "construction_console/internal/usecase/interfaces/mocks"
)

func TestSuggestionUseCase_Suggest(t *testing.T) {
	setup := func(t *testing.T) (*SuggestionUseCase, *mock_interfaces.MockISuggester) {
		s := mock_interfaces.NewMockISuggester(gomock.NewController(t))
		return NewSuggestionUseCase(s, time.Second), s
	}

	t.Run("normalizes suggestions", func(t *testing.T) {
		uc, s := setup(t)
		s.EXPECT().SuggestItems(gomock.Any(), entities.ProjectScopeRenovation).Return([]entities.Item{
			{Name: " Wall Putty ", Type: "Material", Unit: "Kg", SaleRate: 30, GSTRate: 18},
			{Name: "Demolition", Type: entities.ItemTypeService, Unit: "Sqft", SaleRate: 12, GSTRate: 18},
			{Name: "", GSTRate: 18},
			{Name: "Odd Rate", GSTRate: 7},
			{Name: "Refund", SaleRate: -5, GSTRate: 0},
		}, nil)

		items, err := uc.Suggest(context.Background(), " Renovation ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 suggestions, got %+v", items)
		}
		if items[0].Name != "Wall Putty" || items[0].Type != entities.ItemTypeGoods || items[0].ID == "" {
			t.Fatalf("unexpected first suggestion: %+v", items[0])
		}
		if items[1].Type != entities.ItemTypeService || items[1].ID == items[0].ID {
			t.Fatalf("unexpected second suggestion: %+v", items[1])
		}
	})

	t.Run("caps the list", func(t *testing.T) {
		uc, s := setup(t)
		many := make([]entities.Item, 0, 8)
		for i := 0; i < 8; i++ {
			many = append(many, entities.Item{Name: fmt.Sprintf("Item %d", i), GSTRate: 5})
		}
		s.EXPECT().SuggestItems(gomock.Any(), gomock.Any()).Return(many, nil)

		items, _ := uc.Suggest(context.Background(), string(entities.ProjectScopeTurnkey))
		if len(items) != maxSuggestedItems {
			t.Fatalf("expected %d suggestions, got %d", maxSuggestedItems, len(items))
		}
	})

	t.Run("suggester failure yields an empty list", func(t *testing.T) {
		uc, s := setup(t)
		s.EXPECT().SuggestItems(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded"))

		items, err := uc.Suggest(context.Background(), string(entities.ProjectScopeInteriorDesign))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty list, got %#v", items)
		}
	})

	t.Run("unknown scope", func(t *testing.T) {
		uc, _ := setup(t)
		if _, err := uc.Suggest(context.Background(), "Landscaping"); !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("expected ErrInvalidScope, got %v", err)
		}
	})
}
