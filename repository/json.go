package repository

import (
	"encoding/json"
	"fmt"

	"casetriage-backend/models"
)

// JSONB helpers for the nullable columns of analysis_jobs.

func marshalMetadata(m *models.CaseMetadata) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal case metadata: %w", err)
	}
	return data, nil
}

func unmarshalMetadata(data []byte) (*models.CaseMetadata, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var m models.CaseMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case metadata: %w", err)
	}
	return &m, nil
}

func marshalResult(r *models.AgentOutput) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	return data, nil
}

func unmarshalResult(data []byte) (*models.AgentOutput, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var r models.AgentOutput
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &r, nil
}
