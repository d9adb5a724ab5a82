// Package retrieval exposes the evidence search tools used during
// analysis: statute search over the Swiss law corpus and similarity
// search over decided cases.
package retrieval

import (
	"context"

	"casetriage-backend/models"
)

// LawSearcher searches the Swiss law corpus.
type LawSearcher interface {
	SearchLaw(ctx context.Context, query string, topK int) ([]models.Doc, error)
}

// CaseSearcher searches decided historic cases.
type CaseSearcher interface {
	SearchCases(ctx context.Context, query string, topK int) ([]models.HistoricCase, error)
}
