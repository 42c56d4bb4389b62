package gateway

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Request is one generation call: model, natural-language prompt and the JSON
// shape the answer must satisfy.
type Request struct {
	Model  string
	Prompt string
	Schema *genai.Schema
}

// Generator is the only network boundary of the gateway
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GenAIGenerator sends requests to the Gemini API
type GenAIGenerator struct {
	client  *genai.Client
	limiter *rate.Limiter
}

// NewGenAIGenerator creates the Gemini client. A non-positive rps disables
// request pacing.
func NewGenAIGenerator(ctx context.Context, apiKey string, rps float64, burst int) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	g := &GenAIGenerator{client: client}

	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	return g, nil
}

var _ Generator = (*GenAIGenerator)(nil)

func (g *GenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	})
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", nil
	}

	return result.Text(), nil
}
