package repository

import (
	"context"
	"fmt"

	"casetriage-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisJobRepository handles database operations for analysis jobs
type AnalysisJobRepository struct {
	db *pgxpool.Pool
}

// NewAnalysisJobRepository creates a new analysis job repository
func NewAnalysisJobRepository(db *pgxpool.Pool) *AnalysisJobRepository {
	return &AnalysisJobRepository{db: db}
}

// Create inserts a new analysis job
func (r *AnalysisJobRepository) Create(ctx context.Context, job *models.AnalysisJob) error {
	metadataJSON, err := marshalMetadata(job.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO analysis_jobs (case_text, metadata, status, steps)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRow(
		ctx, query,
		job.CaseText,
		metadataJSON,
		job.Status,
		job.Steps,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create analysis job: %w", err)
	}

	return nil
}

// GetByID retrieves an analysis job by ID
func (r *AnalysisJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	query := `
		SELECT id, case_text, metadata, status, current_step, steps,
		       result, report_path, error_message,
		       created_at, updated_at, completed_at
		FROM analysis_jobs
		WHERE id = $1`

	job := &models.AnalysisJob{}
	var metadataJSON, resultJSON []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.CaseText,
		&metadataJSON,
		&job.Status,
		&job.CurrentStep,
		&job.Steps,
		&resultJSON,
		&job.ReportPath,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis job: %w", err)
	}

	if job.Steps == nil {
		job.Steps = make(models.AnalysisSteps, 0)
	}

	if job.Metadata, err = unmarshalMetadata(metadataJSON); err != nil {
		return nil, err
	}
	if job.Result, err = unmarshalResult(resultJSON); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateStatus updates the status of an analysis job
func (r *AnalysisJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AnalysisJobStatus) error {
	query := `
		UPDATE analysis_jobs
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update analysis job status: %w", err)
	}

	return nil
}

// UpdateProgress updates the current step and step list of a running job
func (r *AnalysisJobRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.AnalysisSteps) error {
	query := `
		UPDATE analysis_jobs
		SET current_step = $2, steps = $3, updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, currentStep, steps)
	if err != nil {
		return fmt.Errorf("failed to update analysis job progress: %w", err)
	}

	return nil
}

// Complete marks a job as completed and stores its result and report path
func (r *AnalysisJobRepository) Complete(ctx context.Context, id uuid.UUID, result *models.AgentOutput, reportPath string) error {
	resultJSON, err := marshalResult(result)
	if err != nil {
		return err
	}

	query := `
		UPDATE analysis_jobs
		SET status = $2, result = $3, report_path = $4,
		    completed_at = NOW(), updated_at = NOW()
		WHERE id = $1`

	_, err = r.db.Exec(ctx, query, id, models.JobStatusCompleted, resultJSON, nullableString(reportPath))
	if err != nil {
		return fmt.Errorf("failed to complete analysis job: %w", err)
	}

	return nil
}

// Fail marks a job as failed with an error message
func (r *AnalysisJobRepository) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	query := `
		UPDATE analysis_jobs
		SET status = $2, error_message = $3, updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.JobStatusFailed, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to mark analysis job failed: %w", err)
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
