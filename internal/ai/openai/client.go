package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 500
	defaultTemperature = 0.5
)

// Config tunes chat completion requests. An empty model, a non-positive token limit
// and a nil temperature fall back to defaults. Zero is a valid temperature.
type Config struct {
	Model       string
	MaxTokens   int64
	Temperature *float64
}

// completionsAPI is the slice of openai.ChatCompletionService the generator needs.
type completionsAPI interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Generator sends prompts to the OpenAI chat completions endpoint.
type Generator struct {
	completions completionsAPI
	cfg         Config
}

// NewGenerator creates a Generator authenticated with apiKey.
func NewGenerator(apiKey string, cfg Config, opts ...option.RequestOption) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return newGenerator(&client.Chat.Completions, cfg), nil
}

func newGenerator(completions completionsAPI, cfg Config) *Generator {
	if cfg.Model = strings.TrimSpace(cfg.Model); cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == nil {
		temperature := defaultTemperature
		cfg.Temperature = &temperature
	}

	return &Generator{completions: completions, cfg: cfg}
}

// GenerateContent sends the prompt as a single user message and returns the first choice.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.completions == nil {
		return "", errors.New("openai generator is not initialized")
	}

	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(g.cfg.MaxTokens),
		Temperature: openai.Float(*g.cfg.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("openai api returned no choices")
	}

	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	if output == "" {
		return "", errors.New("openai api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.cfg.Model
}
