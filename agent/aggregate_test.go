package agent

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"casetriage-backend/models"
)

func supportedState(category models.Category) *State {
	likelihood := 60
	s := newState(models.CaseInput{Text: "case"})
	s.Category = &models.CategoryResult{Category: category, Confidence: 0.85}
	s.LikelihoodWin = &likelihood
	s.TimeEstimate = &models.TimeEstimate{Value: 6, Unit: models.UnitMonths}
	s.CostEstimate = &models.CostBreakdown{TotalCHF: 3500}
	s.ExplanationParts = []string{"baseline applied", "model reasoning"}
	return s
}

func TestAggregateSupportedCategory(t *testing.T) {
	p := NewPipeline(nil)
	state := supportedState(models.CategoryEmployment)

	if err := p.aggregate(state); err != nil {
		t.Fatalf("aggregate returned error: %v", err)
	}

	out := state.Result
	if out.Category != "Arbeitsrecht" {
		t.Errorf("category = %q", out.Category)
	}
	if out.LikelihoodWin == nil || *out.LikelihoodWin != "60%" {
		t.Errorf("likelihood = %v", out.LikelihoodWin)
	}
	if out.EstimatedTime == nil || *out.EstimatedTime != "6 months" {
		t.Errorf("time = %v", out.EstimatedTime)
	}
	if out.EstimatedCost == nil || *out.EstimatedCost != "3500 CHF" {
		t.Errorf("cost = %v", out.EstimatedCost)
	}
	if out.Explanation != "baseline applied | model reasoning" {
		t.Errorf("explanation = %q", out.Explanation)
	}
}

func TestAggregateCatchAllNullity(t *testing.T) {
	p := NewPipeline(nil)
	state := newState(models.CaseInput{Text: "crypto licensing question"})
	state.Category = &models.CategoryResult{Category: models.CategoryOther, Confidence: 0.70}

	if err := p.aggregate(state); err != nil {
		t.Fatalf("aggregate returned error for catch-all: %v", err)
	}

	out := state.Result
	if out.LikelihoodWin != nil || out.EstimatedTime != nil || out.EstimatedCost != nil {
		t.Errorf("catch-all estimates must be null, got %v %v %v",
			out.LikelihoodWin, out.EstimatedTime, out.EstimatedCost)
	}
	if out.Explanation == "" {
		t.Error("catch-all explanation must be non-empty")
	}
	if out.SourceDocuments == nil {
		t.Error("source documents must be an empty list, not null")
	}
}

func TestAggregateFailFast(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*State)
		wantField string
	}{
		{"missing likelihood", func(s *State) { s.LikelihoodWin = nil }, "likelihood_win"},
		{"missing time", func(s *State) { s.TimeEstimate = nil }, "time_estimate"},
		{"missing cost", func(s *State) { s.CostEstimate = nil }, "cost_estimate"},
	}

	p := NewPipeline(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := supportedState(models.CategoryTrafficCrimina)
			tt.mutate(state)

			err := p.aggregate(state)
			var aggErr *AggregationError
			if !errors.As(err, &aggErr) {
				t.Fatalf("expected AggregationError, got %v", err)
			}
			if aggErr.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", aggErr.Field, tt.wantField)
			}
		})
	}
}

func TestRenderTime(t *testing.T) {
	tests := []struct {
		estimate models.TimeEstimate
		want     string
	}{
		{models.TimeEstimate{Value: 1, Unit: models.UnitMonths}, "1 month"},
		{models.TimeEstimate{Value: 6, Unit: models.UnitMonths}, "6 months"},
		{models.TimeEstimate{Value: 1, Unit: models.UnitDays}, "1 day"},
		{models.TimeEstimate{Value: 30, Unit: models.UnitDays}, "30 days"},
		{models.TimeEstimate{Value: 2, Unit: models.UnitWeeks}, "2 weeks"},
	}

	for _, tt := range tests {
		if got := renderTime(tt.estimate); got != tt.want {
			t.Errorf("renderTime(%+v) = %q, want %q", tt.estimate, got, tt.want)
		}
	}
}

func TestRenderLikelihoodRangeInvariant(t *testing.T) {
	for _, n := range []int{-10, 0, 1, 50, 100, 150} {
		rendered := renderLikelihood(n)
		parsed, err := strconv.Atoi(strings.TrimSuffix(rendered, "%"))
		if err != nil {
			t.Fatalf("renderLikelihood(%d) = %q, not a percentage", n, rendered)
		}
		if parsed < 1 || parsed > 100 {
			t.Errorf("renderLikelihood(%d) = %q, outside [1,100]", n, rendered)
		}
	}
}

func TestRenderCostTruncatesToInt(t *testing.T) {
	got := renderCost(models.CostBreakdown{TotalCHF: 4890.75})
	if got != "4890 CHF" {
		t.Errorf("renderCost = %q, want %q", got, "4890 CHF")
	}
}
