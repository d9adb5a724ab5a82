package repository

import (
	"context"
	"fmt"

	"casetriage-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoricCaseRepository handles database operations for decided cases
type HistoricCaseRepository struct {
	db *pgxpool.Pool
}

// NewHistoricCaseRepository creates a new historic case repository
func NewHistoricCaseRepository(db *pgxpool.Pool) *HistoricCaseRepository {
	return &HistoricCaseRepository{db: db}
}

// Search performs a vector similarity search over decided cases.
func (r *HistoricCaseRepository) Search(
	ctx context.Context,
	embedding []float64,
	limit int,
) ([]models.HistoricCaseRecord, error) {
	if len(embedding) != 768 {
		return nil, fmt.Errorf("embedding must be 768 dimensions, got %d", len(embedding))
	}

	vectorStr := formatVector(embedding)

	query := `
		SELECT
			id,
			court,
			year,
			summary,
			outcome,
			citation,
			embedding <=> $1::vector AS distance
		FROM historic_cases
		ORDER BY
			embedding <=> $1::vector
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, vectorStr, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query historic cases: %w", err)
	}
	defer rows.Close()

	var cases []models.HistoricCaseRecord
	for rows.Next() {
		var record models.HistoricCaseRecord
		err := rows.Scan(
			&record.ID,
			&record.Court,
			&record.Year,
			&record.Summary,
			&record.Outcome,
			&record.Citation,
			&record.Distance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan historic case: %w", err)
		}
		cases = append(cases, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating historic cases: %w", err)
	}

	return cases, nil
}

// Insert stores a decided case with its embedding. Used by the corpus
// builder, not by the analysis path.
func (r *HistoricCaseRepository) Insert(
	ctx context.Context,
	record *models.HistoricCaseRecord,
	embedding []float64,
) error {
	if len(embedding) != 768 {
		return fmt.Errorf("embedding must be 768 dimensions, got %d", len(embedding))
	}

	query := `
		INSERT INTO historic_cases (
			court, year, summary, outcome, citation, embedding
		) VALUES ($1, $2, $3, $4, $5, $6::vector)
		RETURNING id`

	return r.db.QueryRow(
		ctx, query,
		record.Court,
		record.Year,
		record.Summary,
		record.Outcome,
		record.Citation,
		formatVector(embedding),
	).Scan(&record.ID)
}
