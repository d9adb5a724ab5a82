package retrieval

import (
	"context"
	"fmt"
	"strings"

	"casetriage-backend/llm"
	"casetriage-backend/models"
	"casetriage-backend/repository"
)

const snippetMaxLen = 500

// PgVectorLawSearcher retrieves statute chunks by embedding similarity.
type PgVectorLawSearcher struct {
	embeddings *llm.EmbeddingClient
	repo       *repository.SwissLawChunkRepository
	language   string
}

// NewPgVectorLawSearcher creates a law searcher backed by pgvector.
// language filters the corpus; empty searches all languages.
func NewPgVectorLawSearcher(embeddings *llm.EmbeddingClient, repo *repository.SwissLawChunkRepository, language string) *PgVectorLawSearcher {
	return &PgVectorLawSearcher{embeddings: embeddings, repo: repo, language: language}
}

// SearchLaw embeds the query and returns the closest statute chunks.
func (s *PgVectorLawSearcher) SearchLaw(ctx context.Context, query string, topK int) ([]models.Doc, error) {
	embedding, err := s.embeddings.Embed(ctx, query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed law query: %w", err)
	}

	chunks, err := s.repo.Search(ctx, embedding, s.language, topK)
	if err != nil {
		return nil, err
	}

	docs := make([]models.Doc, 0, len(chunks))
	for _, chunk := range chunks {
		citation := chunk.StatuteCode
		if chunk.Article != nil {
			citation = fmt.Sprintf("%s Art. %s", chunk.StatuteCode, *chunk.Article)
		}
		docs = append(docs, models.Doc{
			ID:       chunk.ID.String(),
			Title:    chunk.SourceDocument,
			Snippet:  truncateSnippet(chunk.Text),
			Citation: citation,
		})
	}

	return docs, nil
}

// PgVectorCaseSearcher retrieves decided cases by embedding similarity.
type PgVectorCaseSearcher struct {
	embeddings *llm.EmbeddingClient
	repo       *repository.HistoricCaseRepository
}

// NewPgVectorCaseSearcher creates a case searcher backed by pgvector.
func NewPgVectorCaseSearcher(embeddings *llm.EmbeddingClient, repo *repository.HistoricCaseRepository) *PgVectorCaseSearcher {
	return &PgVectorCaseSearcher{embeddings: embeddings, repo: repo}
}

// SearchCases embeds the query and returns the closest decided cases.
func (s *PgVectorCaseSearcher) SearchCases(ctx context.Context, query string, topK int) ([]models.HistoricCase, error) {
	embedding, err := s.embeddings.Embed(ctx, query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed case query: %w", err)
	}

	records, err := s.repo.Search(ctx, embedding, topK)
	if err != nil {
		return nil, err
	}

	cases := make([]models.HistoricCase, 0, len(records))
	for _, record := range records {
		hc := models.HistoricCase{
			ID:      record.ID.String(),
			Court:   record.Court,
			Year:    record.Year,
			Summary: truncateSnippet(record.Summary),
			Outcome: record.Outcome,
		}
		if record.Citation != nil {
			hc.Citation = *record.Citation
		}
		cases = append(cases, hc)
	}

	return cases, nil
}

func truncateSnippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= snippetMaxLen {
		return text
	}
	return text[:snippetMaxLen] + "..."
}
