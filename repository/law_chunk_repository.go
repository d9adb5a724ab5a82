package repository

import (
	"context"
	"fmt"
	"strings"

	"casetriage-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SwissLawChunkRepository handles database operations for Swiss law chunks
type SwissLawChunkRepository struct {
	db *pgxpool.Pool
}

// NewSwissLawChunkRepository creates a new law chunk repository
func NewSwissLawChunkRepository(db *pgxpool.Pool) *SwissLawChunkRepository {
	return &SwissLawChunkRepository{db: db}
}

// formatVector formats an embedding vector as a string for pgx
func formatVector(embedding []float64) string {
	if len(embedding) == 0 {
		return "[]"
	}
	var parts []string
	for _, v := range embedding {
		parts = append(parts, fmt.Sprintf("%.6f", v))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Search performs a vector similarity search over the law corpus.
// embedding: Query embedding vector (768 dimensions)
// language: Optional language filter ("de", "fr", "it", "en"); empty matches all
// limit: Maximum number of chunks to return
func (r *SwissLawChunkRepository) Search(
	ctx context.Context,
	embedding []float64,
	language string,
	limit int,
) ([]models.SwissLawChunk, error) {
	if len(embedding) != 768 {
		return nil, fmt.Errorf("embedding must be 768 dimensions, got %d", len(embedding))
	}

	vectorStr := formatVector(embedding)

	query := `
		SELECT
			id,
			chunk_text,
			source_document,
			statute_code,
			article,
			language,
			embedding <=> $1::vector AS distance
		FROM swiss_law_chunks
		WHERE ($2 = '' OR language = $2)
		ORDER BY
			embedding <=> $1::vector
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, vectorStr, language, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query law chunks: %w", err)
	}
	defer rows.Close()

	var chunks []models.SwissLawChunk
	for rows.Next() {
		var chunk models.SwissLawChunk
		err := rows.Scan(
			&chunk.ID,
			&chunk.Text,
			&chunk.SourceDocument,
			&chunk.StatuteCode,
			&chunk.Article,
			&chunk.Language,
			&chunk.Distance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan law chunk: %w", err)
		}
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating law chunks: %w", err)
	}

	return chunks, nil
}

// Insert stores a law chunk with its embedding. Used by the corpus
// builder, not by the analysis path.
func (r *SwissLawChunkRepository) Insert(
	ctx context.Context,
	chunk *models.SwissLawChunk,
	embedding []float64,
) error {
	if len(embedding) != 768 {
		return fmt.Errorf("embedding must be 768 dimensions, got %d", len(embedding))
	}

	query := `
		INSERT INTO swiss_law_chunks (
			chunk_text, source_document, statute_code, article, language, embedding
		) VALUES ($1, $2, $3, $4, $5, $6::vector)
		RETURNING id`

	return r.db.QueryRow(
		ctx, query,
		chunk.Text,
		chunk.SourceDocument,
		chunk.StatuteCode,
		chunk.Article,
		chunk.Language,
		formatVector(embedding),
	).Scan(&chunk.ID)
}
