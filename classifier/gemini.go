package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"casetriage-backend/llm"
)

const classifySystemPrompt = `You are an expert in classifying questions and statements in different fields of Swiss law. You are provided with a case description. Use the provided classes for your classification. Your output must be only the JSON object, with no surrounding text.

classes:
    * employment_law: Employment contracts, workplace disputes, dismissals, wages.
    * real_estate_law: Property disputes, rental agreements, real estate transactions.
    * traffic_law: Traffic violations, criminal traffic offenses, license issues.

expected_format: {
    "employment_law": bool,
    "real_estate_law": bool,
    "traffic_law": bool
}`

// GeminiClassifier implements Classifier with a JSON-flags prompt against
// the language model.
type GeminiClassifier struct {
	generator llm.Generator
}

// NewGeminiClassifier creates a model-backed classifier
func NewGeminiClassifier(generator llm.Generator) *GeminiClassifier {
	return &GeminiClassifier{generator: generator}
}

// Classify asks the model for per-domain flags and parses its JSON reply.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (Flags, error) {
	prompt := fmt.Sprintf("case description: %s", text)

	content, err := c.generator.Generate(ctx, classifySystemPrompt, prompt)
	if err != nil {
		return Flags{}, fmt.Errorf("classification call failed: %w", err)
	}

	var flags Flags
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &flags); err != nil {
		return Flags{}, fmt.Errorf("failed to parse classifier response: %w", err)
	}

	return flags, nil
}

// stripCodeFence removes markdown code fences the model sometimes wraps
// JSON output in.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
