// Package suggest proposes catalog items for a project scope.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

// MaxSuggestions is how many items one request asks for.
const MaxSuggestions = 5

var ErrGeminiNotConfigured = errors.New("gemini suggester not configured")

// contentGenerator is the slice of the Gemini API the suggester needs; *genai.Models implements it.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSuggester asks a Gemini model for items as structured JSON.
type GeminiSuggester struct {
	api   contentGenerator
	model string
	log   *logrus.Entry
}

var _ interfaces.ISuggester = (*GeminiSuggester)(nil)

func NewGeminiSuggester(ctx context.Context, cfg *config.Config) (*GeminiSuggester, error) {
	if !cfg.SuggestionsEnabled() {
		return nil, ErrGeminiNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return newGeminiSuggester(client.Models, cfg.GeminiModel), nil
}

func newGeminiSuggester(api contentGenerator, model string) *GeminiSuggester {
	return &GeminiSuggester{api: api, model: model, log: config.Module("suggest.gemini")}
}

func (s *GeminiSuggester) SuggestItems(ctx context.Context, scope entities.ProjectScope) ([]entities.Item, error) {
	resp, err := s.api.GenerateContent(ctx, s.model, genai.Text(prompt(scope)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   itemListSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate: %w", err)
	}

	text := "[]"
	if resp != nil {
		if t := strings.TrimSpace(resp.Text()); t != "" {
			text = t
		}
	}
	var items []entities.Item
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("gemini: decode suggestions: %w", err)
	}
	s.log.WithFields(logrus.Fields{"scope": scope, "count": len(items)}).Debug("items suggested")
	return items, nil
}

func prompt(scope entities.ProjectScope) string {
	return fmt.Sprintf("Suggest %d common construction items/services for a %q project. "+
		"Provide item name, type (Goods or Service), typical unit (%s, etc.), a generic HSN code, "+
		"a placeholder sale rate, and a standard GST rate (0, 5, 12, 18, or 28).",
		MaxSuggestions, string(scope), strings.Join(entities.StandardUnits, ", "))
}

var itemListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     {Type: genai.TypeString},
			"type":     {Type: genai.TypeString, Enum: []string{string(entities.ItemTypeGoods), string(entities.ItemTypeService)}},
			"unit":     {Type: genai.TypeString},
			"hsnCode":  {Type: genai.TypeString},
			"saleRate": {Type: genai.TypeNumber},
			"gstRate":  {Type: genai.TypeNumber},
		},
		Required: []string{"name", "type", "unit", "hsnCode", "saleRate", "gstRate"},
	},
}

// NoopSuggester never suggests anything. It stands in when Gemini is not configured.
type NoopSuggester struct{}

var _ interfaces.ISuggester = NoopSuggester{}

func (NoopSuggester) SuggestItems(context.Context, entities.ProjectScope) ([]entities.Item, error) {
	return []entities.Item{}, nil
}

// New picks Gemini when an API key is configured.
func New(ctx context.Context, cfg *config.Config) interfaces.ISuggester {
	s, err := NewGeminiSuggester(ctx, cfg)
	if err != nil {
		if !errors.Is(err, ErrGeminiNotConfigured) {
			config.LogError(config.GetLogger(), "suggest", "New", "gemini unavailable, suggestions disabled", nil, err)
		}
		return NoopSuggester{}
	}
	return s
}
