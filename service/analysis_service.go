// Package service wires the analysis pipeline to the job store and the
// report archive: synchronous analysis for direct API calls and an
// asynchronous job flow processed by a background goroutine.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"casetriage-backend/agent"
	"casetriage-backend/models"
	"casetriage-backend/repository"
	"casetriage-backend/storage"

	"github.com/google/uuid"
)

var (
	ErrPipelineNotSet      = errors.New("analysis pipeline not set")
	ErrJobRepositoryNotSet = errors.New("analysis job repository not set")
)

// AnalysisService handles business logic for case analyses
type AnalysisService struct {
	pipeline *agent.Pipeline
	jobRepo  *repository.AnalysisJobRepository
	archive  storage.ReportArchive
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// WithPipeline sets the analysis pipeline
func WithPipeline(p *agent.Pipeline) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.pipeline = p
	}
}

// WithAnalysisJobRepository sets the job repository
func WithAnalysisJobRepository(repo *repository.AnalysisJobRepository) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.jobRepo = repo
	}
}

// WithReportArchive sets the report archive
func WithReportArchive(archive storage.ReportArchive) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.archive = archive
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeCaseRequest represents a synchronous analysis request
type AnalyzeCaseRequest struct {
	Input models.CaseInput
}

// AnalyzeCaseResult represents the result of a synchronous analysis
type AnalyzeCaseResult struct {
	Output *models.AgentOutput
}

// AnalyzeCase runs the pipeline synchronously and returns the result
func (s *AnalysisService) AnalyzeCase(ctx context.Context, req AnalyzeCaseRequest) (*AnalyzeCaseResult, error) {
	if s.pipeline == nil {
		return nil, ErrPipelineNotSet
	}

	output, err := s.pipeline.Run(ctx, req.Input)
	if err != nil {
		return nil, err
	}

	return &AnalyzeCaseResult{Output: output}, nil
}

// StartAnalysisRequest represents a request to start an async analysis
type StartAnalysisRequest struct {
	Input models.CaseInput
}

// StartAnalysisResult represents the created analysis job
type StartAnalysisResult struct {
	Job *models.AnalysisJob
}

// StartAnalysis creates a pending analysis job. The caller is expected to
// invoke ProcessAnalysis in a background goroutine and poll GetJob.
func (s *AnalysisService) StartAnalysis(ctx context.Context, req StartAnalysisRequest) (*StartAnalysisResult, error) {
	if s.pipeline == nil {
		return nil, ErrPipelineNotSet
	}
	if s.jobRepo == nil {
		return nil, ErrJobRepositoryNotSet
	}
	if req.Input.Text == "" {
		return nil, agent.ErrEmptyCaseText
	}

	job := &models.AnalysisJob{
		CaseText: req.Input.Text,
		Metadata: req.Input.Metadata,
		Status:   models.JobStatusPending,
		Steps:    pendingSteps(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return &StartAnalysisResult{Job: job}, nil
}

// ProcessAnalysis runs the pipeline for a pending job, tracking stage
// progress on the job row, then archives the report and completes the
// job. Intended to run in a background goroutine.
func (s *AnalysisService) ProcessAnalysis(ctx context.Context, jobID uuid.UUID) error {
	if s.pipeline == nil {
		return ErrPipelineNotSet
	}
	if s.jobRepo == nil {
		return ErrJobRepositoryNotSet
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load analysis job: %w", err)
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress); err != nil {
		return err
	}

	steps := pendingSteps()
	observe := func(stage string) {
		for i := range steps {
			switch {
			case steps[i].Name == stage:
				steps[i].Status = "in_progress"
			case steps[i].Status == "in_progress":
				steps[i].Status = "completed"
			}
		}
		if err := s.jobRepo.UpdateProgress(ctx, jobID, stage, steps); err != nil {
			log.Printf("Warning: failed to update job progress: %v", err)
		}
	}

	input := models.CaseInput{Text: job.CaseText, Metadata: job.Metadata}
	output, err := s.pipeline.RunObserved(ctx, input, observe)
	if err != nil {
		if failErr := s.jobRepo.Fail(ctx, jobID, err.Error()); failErr != nil {
			log.Printf("Warning: failed to mark job %s failed: %v", jobID, failErr)
		}
		return err
	}

	reportPath := s.archiveReport(ctx, jobID, output)

	if err := s.jobRepo.Complete(ctx, jobID, output, reportPath); err != nil {
		return fmt.Errorf("failed to complete analysis job: %w", err)
	}

	return nil
}

// GetJobRequest represents a job status query
type GetJobRequest struct {
	JobID uuid.UUID
}

// GetJobResult represents the current state of an analysis job
type GetJobResult struct {
	Job *models.AnalysisJob
}

// GetJob returns the current state of an analysis job
func (s *AnalysisService) GetJob(ctx context.Context, req GetJobRequest) (*GetJobResult, error) {
	if s.jobRepo == nil {
		return nil, ErrJobRepositoryNotSet
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	return &GetJobResult{Job: job}, nil
}

// archiveReport serializes the output to JSON and stores it in the
// archive. Archival failure never fails the analysis.
func (s *AnalysisService) archiveReport(ctx context.Context, jobID uuid.UUID, output *models.AgentOutput) string {
	if s.archive == nil {
		return ""
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Printf("Warning: failed to serialize report for job %s: %v", jobID, err)
		return ""
	}

	path, err := s.archive.Store(ctx, jobID, "report.json", bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: failed to archive report for job %s: %v", jobID, err)
		return ""
	}

	return path
}

func pendingSteps() models.AnalysisSteps {
	steps := make(models.AnalysisSteps, 0, len(agent.Stages))
	for _, stage := range agent.Stages {
		steps = append(steps, models.AnalysisStep{Name: stage, Status: "pending"})
	}
	return steps
}
