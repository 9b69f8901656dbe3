package menugen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/llm"
	"github.com/abhisek/menuquiz/internal/menu"
)

// Config controls LLMDrafter.
type Config struct {
	// Validators run in order; the first failure stops the chain.
	Validators []Validator

	MaxTokens   int
	Temperature float64

	// Timeout bounds one Draft call including retries. Zero means none.
	Timeout time.Duration

	// Attempts is how many times a retryable validation failure is sent
	// back to the model. Provider errors are retried by the provider.
	Attempts int

	// MaxExamples caps the example items in the prompt.
	MaxExamples int
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&NotItemNameValidator{},
		},
		MaxTokens:   512,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
		Attempts:    2,
		MaxExamples: 5,
	}
}

// LLMDrafter implements Drafter with an llm.Provider.
type LLMDrafter struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

var _ Drafter = (*LLMDrafter)(nil)

// New creates an LLMDrafter.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *LLMDrafter {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMDrafter{provider: provider, config: cfg, log: log}
}

type draftOutput struct {
	Ingredients []string `json:"ingredients"`
}

// Draft asks the model for input.Item's ingredients and validates them.
func (g *LLMDrafter) Draft(ctx context.Context, input Input) (*Draft, error) {
	input.Item = strings.TrimSpace(input.Item)
	input.Category = strings.TrimSpace(input.Category)
	input.Subcategory = strings.TrimSpace(input.Subcategory)
	if input.Item == "" || input.Category == "" {
		return nil, errors.New("item and category are required")
	}

	ctx = llm.WithPurpose(ctx, "draft-ingredients")
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	var rejected string
	var lastErr error
	for attempt := range g.config.Attempts {
		d, verr, err := g.attempt(ctx, input, rejected)
		if err != nil {
			return nil, err
		}
		if verr == nil {
			return d, nil
		}

		g.log.Info("draft rejected",
			zap.String("item", input.Item),
			zap.Int("attempt", attempt+1),
			zap.String("validator", verr.Validator),
			zap.String("reason", verr.Message))
		lastErr = verr
		if !verr.Retryable {
			break
		}
		rejected = verr.Message
	}
	return nil, lastErr
}

func (g *LLMDrafter) attempt(ctx context.Context, input Input, rejected string) (*Draft, *ValidationError, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(input, g.config, rejected)),
		Schema:      IngredientsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out draftOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	d := &Draft{
		Item:        input.Item,
		Category:    input.Category,
		Subcategory: input.Subcategory,
	}
	for _, ing := range out.Ingredients {
		d.Ingredients = append(d.Ingredients, strings.TrimSpace(ing))
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(d); verr != nil {
			return nil, verr, nil
		}
	}
	return d, nil, nil
}

// ExamplesFrom picks example items for a prompt from the same category,
// preferring the same subcategory.
func ExamplesFrom(ds *menu.Dataset, category, subcategory string) []Example {
	var same, other []Example
	for _, it := range ds.Items(category) {
		e := Example{Item: it.Name, Ingredients: it.Ingredients}
		if subcategory != "" && it.Subcategory == subcategory {
			same = append(same, e)
		} else {
			other = append(other, e)
		}
	}
	return append(same, other...)
}
