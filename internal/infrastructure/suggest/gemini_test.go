package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
)

type fakeGenerator struct {
	text   string
	err    error
	model  string
	prompt string
	cfg    *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.cfg = model, cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestGeminiSuggester_SuggestItems(t *testing.T) {
	gen := &fakeGenerator{text: `[
		{"name":"Vitrified Tiles","type":"Goods","unit":"Sqft","hsnCode":"6907","saleRate":55,"gstRate":18},
		{"name":"False Ceiling","type":"Service","unit":"Sqft","hsnCode":"9954","saleRate":90,"gstRate":18}
	]`}
	s := newGeminiSuggester(gen, "gemini-2.5-flash")

	items, err := s.SuggestItems(context.Background(), entities.ProjectScopeInteriorDesign)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Vitrified Tiles", items[0].Name)
	assert.Equal(t, entities.ItemTypeService, items[1].Type)
	assert.Equal(t, 18.0, items[0].GSTRate)

	assert.Equal(t, "gemini-2.5-flash", gen.model)
	assert.True(t, strings.Contains(gen.prompt, `"Interior Design"`))
	require.NotNil(t, gen.cfg)
	assert.Equal(t, "application/json", gen.cfg.ResponseMIMEType)
	assert.Equal(t, genai.TypeArray, gen.cfg.ResponseSchema.Type)
}

func TestGeminiSuggester_Errors(t *testing.T) {
	t.Run("api failure", func(t *testing.T) {
		s := newGeminiSuggester(&fakeGenerator{err: errors.New("quota exceeded")}, "m")
		_, err := s.SuggestItems(context.Background(), entities.ProjectScopeRenovation)
		assert.ErrorContains(t, err, "quota exceeded")
	})

	t.Run("malformed json", func(t *testing.T) {
		s := newGeminiSuggester(&fakeGenerator{text: "sure, here are some items"}, "m")
		_, err := s.SuggestItems(context.Background(), entities.ProjectScopeRenovation)
		assert.ErrorContains(t, err, "decode suggestions")
	})

	t.Run("empty answer", func(t *testing.T) {
		s := newGeminiSuggester(&fakeGenerator{text: "  "}, "m")
		items, err := s.SuggestItems(context.Background(), entities.ProjectScopeRenovation)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestNew_FallsBackWithoutKey(t *testing.T) {
	s := New(context.Background(), &config.Config{})
	assert.IsType(t, NoopSuggester{}, s)

	items, err := s.SuggestItems(context.Background(), entities.ProjectScopeTurnkey)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
