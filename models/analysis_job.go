package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of an analysis job
type AnalysisJobStatus string

const (
	JobStatusPending    AnalysisJobStatus = "pending"
	JobStatusInProgress AnalysisJobStatus = "in_progress"
	JobStatusCompleted  AnalysisJobStatus = "completed"
	JobStatusFailed     AnalysisJobStatus = "failed"
)

// AnalysisStep represents one pipeline stage in the analysis job
type AnalysisStep struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "pending", "in_progress", "completed", "failed"
}

// AnalysisSteps represents the ordered list of pipeline stages
type AnalysisSteps []AnalysisStep

// Value implements driver.Valuer for JSONB
func (a AnalysisSteps) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *AnalysisSteps) Scan(value interface{}) error {
	if value == nil {
		*a = make(AnalysisSteps, 0)
		return nil
	}

	// Handle different types that pgx might return for JSONB
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*a = make(AnalysisSteps, 0)
		return nil
	}

	if len(bytes) == 0 {
		*a = make(AnalysisSteps, 0)
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// AnalysisJob represents one asynchronous case analysis
type AnalysisJob struct {
	ID           uuid.UUID         `json:"id"`
	CaseText     string            `json:"case_text"`
	Metadata     *CaseMetadata     `json:"metadata,omitempty"`
	Status       AnalysisJobStatus `json:"status"`
	CurrentStep  *string           `json:"current_step,omitempty"`
	Steps        AnalysisSteps     `json:"steps"`
	Result       *AgentOutput      `json:"result,omitempty"`
	ReportPath   *string           `json:"report_path,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}
