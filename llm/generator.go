// Package llm wraps the language-model collaborators behind small
// interfaces so the pipeline core stays testable with mocks.
package llm

import (
	"context"
	"errors"
)

// Generator is the opaque text-generation contract the pipeline depends
// on. Implementations make no latency or availability guarantees; callers
// must treat every call as fallible.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

var (
	ErrGenerationFailed = errors.New("failed to generate content")
	ErrEmbeddingFailed  = errors.New("failed to generate embedding")
)
