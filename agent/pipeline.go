// Package agent implements the case analysis pipeline: a fixed sequence
// of stages over a single shared state record, with one conditional skip
// for the catch-all category. Collaborators (classifier, model,
// retrieval, human input) are injected as interfaces; every collaborator
// failure degrades locally, and the only surfaced error is a missing
// required field at aggregation.
package agent

import (
	"context"
	"errors"

	"casetriage-backend/classifier"
	"casetriage-backend/llm"
	"casetriage-backend/models"
	"casetriage-backend/retrieval"
)

// ErrEmptyCaseText is returned when an analysis is requested without any
// case description.
var ErrEmptyCaseText = errors.New("case text must not be empty")

// AskUser obtains additional information from a human during the
// clarification round. Implementations are optional; a nil collaborator
// disables clarification.
type AskUser interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Pipeline runs the full case analysis. Construct with NewPipeline; the
// generator is required, everything else degrades gracefully when absent.
type Pipeline struct {
	generator    llm.Generator
	classifier   classifier.Classifier
	lawSearcher  retrieval.LawSearcher
	caseSearcher retrieval.CaseSearcher
	askUser      AskUser
	policies     Policies
}

// PipelineOption is a functional option for Pipeline
type PipelineOption func(*Pipeline)

// WithClassifier sets the category classifier collaborator
func WithClassifier(c classifier.Classifier) PipelineOption {
	return func(p *Pipeline) {
		p.classifier = c
	}
}

// WithLawSearcher sets the Swiss law retrieval collaborator
func WithLawSearcher(s retrieval.LawSearcher) PipelineOption {
	return func(p *Pipeline) {
		p.lawSearcher = s
	}
}

// WithCaseSearcher sets the historic case retrieval collaborator
func WithCaseSearcher(s retrieval.CaseSearcher) PipelineOption {
	return func(p *Pipeline) {
		p.caseSearcher = s
	}
}

// WithAskUser sets the human clarification collaborator
func WithAskUser(a AskUser) PipelineOption {
	return func(p *Pipeline) {
		p.askUser = a
	}
}

// WithPolicies overrides the default policy constants
func WithPolicies(policies Policies) PipelineOption {
	return func(p *Pipeline) {
		p.policies = policies
	}
}

// NewPipeline creates an analysis pipeline with the given model generator
func NewPipeline(generator llm.Generator, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		generator: generator,
		policies:  DefaultPolicies(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policies returns the pipeline's effective policy constants.
func (p *Pipeline) Policies() Policies {
	return p.policies
}

// Stage names reported to a run observer, in pipeline order.
const (
	StageIngest             = "ingest"
	StageCategorize         = "categorize"
	StageWinLikelihood      = "win_likelihood"
	StageTimeAndCost        = "time_and_cost"
	StageAggregate          = "aggregate"
	StagePrepareFinalAnswer = "prepare_final_answer"
)

// Stages lists every pipeline stage in execution order.
var Stages = []string{
	StageIngest,
	StageCategorize,
	StageWinLikelihood,
	StageTimeAndCost,
	StageAggregate,
	StagePrepareFinalAnswer,
}

// Run executes the analysis pipeline for one case. It returns a fully
// populated AgentOutput, or an AggregationError when a supported category
// reaches aggregation with a required estimate missing. Collaborator
// failures never surface here; they degrade into explanation notes.
func (p *Pipeline) Run(ctx context.Context, input models.CaseInput) (*models.AgentOutput, error) {
	return p.RunObserved(ctx, input, nil)
}

// RunObserved is Run with a per-run stage observer, invoked as each stage
// begins. A nil observer disables reporting.
func (p *Pipeline) RunObserved(ctx context.Context, input models.CaseInput, observe func(stage string)) (*models.AgentOutput, error) {
	if input.Text == "" {
		return nil, ErrEmptyCaseText
	}
	if observe == nil {
		observe = func(string) {}
	}

	state := newState(input)

	observe(StageIngest)
	p.ingest(state)

	observe(StageCategorize)
	p.categorize(ctx, state)

	// The catch-all category skips straight to aggregation; estimation
	// is not applicable for it by design.
	if state.category() != models.CategoryOther {
		observe(StageWinLikelihood)
		p.winLikelihood(ctx, state)

		observe(StageTimeAndCost)
		p.timeAndCost(ctx, state)
	}

	observe(StageAggregate)
	if err := p.aggregate(state); err != nil {
		return nil, err
	}

	observe(StagePrepareFinalAnswer)
	p.prepareFinalAnswer(ctx, state)

	return state.Result, nil
}

// ingest normalizes the raw input into the working case facts.
func (p *Pipeline) ingest(state *State) {
	meta := state.CaseInput.Metadata
	if meta == nil {
		return
	}
	if meta.Language != "" {
		state.CaseFacts["language"] = meta.Language
	}
	if meta.PreferredUnits != "" {
		state.CaseFacts["preferred_units"] = meta.PreferredUnits
	}
	if meta.CourtLevel != "" {
		state.CaseFacts["court_level"] = meta.CourtLevel
	}
}
