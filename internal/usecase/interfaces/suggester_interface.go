package interfaces

import (
	"context"

	"construction_console/internal/domain/entities"
)

// ISuggester proposes catalog items typical for a project scope. Suggestions are not saved.
type ISuggester interface {
	SuggestItems(ctx context.Context, scope entities.ProjectScope) ([]entities.Item, error)
}
