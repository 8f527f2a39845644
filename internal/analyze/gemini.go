package analyze

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API. The client is created on first use.
type GeminiGenerator struct {
	apiKey  string
	baseURL string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiGenerator creates a generator for apiKey. baseURL overrides the
// API endpoint when non-empty.
func NewGeminiGenerator(apiKey, baseURL string) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, baseURL: baseURL}
}

func (g *GeminiGenerator) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      g.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
		if g.initErr != nil {
			g.initErr = fmt.Errorf("create gemini client: %w", g.initErr)
		}
	})
	return g.client, g.initErr
}

// Generate sends prompt to model and returns the text of the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
