package agent

import (
	"casetriage-backend/estimator"
	"casetriage-backend/models"
)

// State is the shared working record one analysis run threads through its
// stages. Each field is written by exactly one stage; ToolCallCount,
// ExplanationParts and SourceDocuments are append-only accumulators. A
// fresh State is created per run and never shared across runs.
type State struct {
	CaseInput models.CaseInput

	// CaseFacts is the working memory derived from the input plus
	// inferred attributes (complexity, court level, appeal flag).
	CaseFacts map[string]string

	Category    *models.CategoryResult
	Subcategory estimator.Subcategory

	LikelihoodWin *int
	TimeEstimate  *models.TimeEstimate
	CostEstimate  *models.CostBreakdown

	LawDocs       []models.Doc
	HistoricCases []models.HistoricCase

	ToolCallCount    int
	AskUserCalls     int
	ExplanationParts []string
	SourceDocuments  []models.Doc

	Result *models.AgentOutput
}

func newState(input models.CaseInput) *State {
	return &State{
		CaseInput: input,
		CaseFacts: make(map[string]string),
	}
}

func (s *State) addExplanation(part string) {
	if part != "" {
		s.ExplanationParts = append(s.ExplanationParts, part)
	}
}

func (s *State) category() models.Category {
	if s.Category == nil {
		return models.CategoryOther
	}
	return s.Category.Category
}
