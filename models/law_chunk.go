package models

import (
	"github.com/google/uuid"
)

// SwissLawChunk represents a chunk of Swiss statute text from the knowledge base
type SwissLawChunk struct {
	ID             uuid.UUID `json:"id"`
	Text           string    `json:"text"`
	SourceDocument string    `json:"source_document"` // e.g. "SR-220 Obligationenrecht"
	StatuteCode    string    `json:"statute_code"`    // e.g. "SR-220", "SR-741.01"
	Article        *string   `json:"article,omitempty"`
	Language       string    `json:"language"`
	Distance       float64   `json:"distance,omitempty"` // Vector similarity distance
}

// HistoricCaseRecord represents a decided case from the historic cases corpus
type HistoricCaseRecord struct {
	ID       uuid.UUID   `json:"id"`
	Court    string      `json:"court"`
	Year     int         `json:"year"`
	Summary  string      `json:"summary"`
	Outcome  CaseOutcome `json:"outcome"`
	Citation *string     `json:"citation,omitempty"`
	Distance float64     `json:"distance,omitempty"`
}
