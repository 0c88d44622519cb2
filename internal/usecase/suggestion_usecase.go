package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

var ErrInvalidScope = errors.New("invalid project scope")

const maxSuggestedItems = 5

// ISuggestionUseCase proposes catalog items for a project scope. A failing suggester yields an
// empty list, never an error.
type ISuggestionUseCase interface {
	Suggest(ctx context.Context, scope string) ([]entities.Item, error)
}

type SuggestionUseCase struct {
	suggester interfaces.ISuggester
	timeout   time.Duration
	log       *logrus.Entry
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

func NewSuggestionUseCase(suggester interfaces.ISuggester, timeout time.Duration) *SuggestionUseCase {
	return &SuggestionUseCase{suggester: suggester, timeout: timeout, log: config.Module("suggestion")}
}

func (u *SuggestionUseCase) Suggest(ctx context.Context, scope string) ([]entities.Item, error) {
	sc := entities.ProjectScope(strings.TrimSpace(scope))
	if !sc.IsValid() {
		return nil, ErrInvalidScope
	}
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	raw, err := u.suggester.SuggestItems(ctx, sc)
	if err != nil {
		config.LogError(config.GetLogger(), "suggestion", "Suggest", "suggester failed", sc, err)
		return []entities.Item{}, nil
	}

	out := make([]entities.Item, 0, maxSuggestedItems)
	for _, it := range raw {
		it, ok := normalizeSuggestion(it)
		if !ok {
			u.log.WithField("name", it.Name).Debug("suggestion dropped")
			continue
		}
		out = append(out, it)
		if len(out) == maxSuggestedItems {
			break
		}
	}
	return out, nil
}

// normalizeSuggestion gives a suggested item a fresh id and rejects what the catalog could not store.
func normalizeSuggestion(it entities.Item) (entities.Item, bool) {
	it.Name = strings.TrimSpace(it.Name)
	it.Unit = strings.TrimSpace(it.Unit)
	it.HSNCode = strings.TrimSpace(it.HSNCode)
	if it.Name == "" || !entities.IsValidGSTRate(it.GSTRate) || it.SaleRate < 0 {
		return it, false
	}
	if it.Type != entities.ItemTypeService {
		it.Type = entities.ItemTypeGoods
	}
	it.ID = uuid.NewString()
	return it, true
}
