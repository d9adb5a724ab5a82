package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
)

const (
	defaultModel   = "gemini-2.0-flash"
	maxRetries     = 3
	initialBackoff = time.Second

	// Gemini models have context limits - truncate very long prompts
	maxPromptChars = 30000
)

// GeminiGenerator implements Generator on top of the Gemini API.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

// GeminiOption is a functional option for GeminiGenerator
type GeminiOption func(*GeminiGenerator)

// WithModel overrides the model name
func WithModel(model string) GeminiOption {
	return func(g *GeminiGenerator) {
		g.model = model
	}
}

// WithTemperature overrides the sampling temperature
func WithTemperature(t float32) GeminiOption {
	return func(g *GeminiGenerator) {
		g.temperature = t
	}
}

// NewGeminiGenerator creates a generator backed by the given Gemini client
func NewGeminiGenerator(client *genai.Client, opts ...GeminiOption) *GeminiGenerator {
	g := &GeminiGenerator{
		client:      client,
		model:       defaultModel,
		temperature: 0.2,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate calls the model with retry and exponential backoff.
func (g *GeminiGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	if len(prompt) > maxPromptChars {
		log.Printf("Warning: Prompt too long (%d chars), truncating to %d chars", len(prompt), maxPromptChars)
		prompt = prompt[:maxPromptChars] + "\n\n[Content truncated due to length...]"
	}

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}

		content := extractText(resp)
		if content != "" {
			return content, nil
		}
		lastErr = fmt.Errorf("model returned empty content")
	}

	if lastErr != nil {
		return "", fmt.Errorf("generation failed after %d attempts: %w", maxRetries, lastErr)
	}
	return "", ErrGenerationFailed
}

func extractText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}
	return builder.String()
}
