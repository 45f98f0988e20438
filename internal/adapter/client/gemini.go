package client

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"wikoo-core/internal/domain/entity"
)

type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient connects to the Gemini API backend. baseURL overrides the
// SDK endpoint when non-empty; httpClient may be nil.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string, httpClient *http.Client) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func NewGeminiClientFromClient(c *genai.Client) *GeminiClient {
	return &GeminiClient{client: c}
}

// Complete sends the plan's system messages as the system instruction and the
// remaining messages as user contents.
func (g *GeminiClient) Complete(ctx context.Context, plan entity.PromptPlan, params entity.CompletionParams) (*entity.Completion, error) {
	turns := plan.Turns()
	contents := make([]*genai.Content, 0, len(turns))
	for _, m := range turns {
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		MaxOutputTokens: params.MaxTokens,
	}
	if system := plan.System(); system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, params.Model, contents, config)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Candidates) == 0 {
		return nil, entity.ErrNoCandidates
	}

	completion := &entity.Completion{
		Text:  result.Text(),
		Model: params.Model,
	}
	if result.UsageMetadata != nil {
		completion.TokenCount = int(result.UsageMetadata.TotalTokenCount)
	}
	return completion, nil
}

// UnavailableClient stands in when no completion backend could be built.
// Every call fails, so callers serve their fallbacks.
type UnavailableClient struct {
	Err error
}

func (u UnavailableClient) Complete(context.Context, entity.PromptPlan, entity.CompletionParams) (*entity.Completion, error) {
	if u.Err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrServiceUnavailable, u.Err)
	}
	return nil, entity.ErrServiceUnavailable
}
