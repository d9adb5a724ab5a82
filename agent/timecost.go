package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"casetriage-backend/estimator"
)

// timeAndCost derives duration and cost estimates. A model analysis
// determines the complexity tier; the baseline table supplies figures
// where it covers the (category, subcategory) pair, the fallback
// calculator covers everything else. Cost always consumes the time
// estimate, so the two run strictly in sequence.
func (p *Pipeline) timeAndCost(ctx context.Context, state *State) {
	complexity := p.assessComplexity(ctx, state)
	state.CaseFacts["complexity"] = string(complexity)

	category := state.category()
	baseline := estimator.Lookup(category, state.Subcategory)

	if t, ok := estimator.ParseTime(baseline.Time); ok {
		state.TimeEstimate = &t
		state.addExplanation(fmt.Sprintf("Time estimate from business logic: %s", baseline.Time))
	} else {
		t := estimator.FallbackTime(category, complexity)
		state.TimeEstimate = &t
		state.addExplanation(fmt.Sprintf("Time estimate from fallback calculation (%s complexity)", complexity))
	}

	if c, ok := estimator.ParseCost(baseline.Cost); ok {
		state.CostEstimate = &c
		state.addExplanation(fmt.Sprintf("Cost estimate from business logic: %s", baseline.Cost))
	} else {
		c := estimator.FallbackCost(*state.TimeEstimate, p.policies.Fallback)
		state.CostEstimate = &c
		state.addExplanation("Cost estimate from fallback calculation")
	}
}

// assessComplexity asks the model to analyze the case and keyword-matches
// its response into a complexity tier. Unparseable or failed responses
// fall back to the default tier.
func (p *Pipeline) assessComplexity(ctx context.Context, state *State) estimator.Complexity {
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n", state.CaseInput.Text)
	for _, doc := range state.LawDocs {
		fmt.Fprintf(&b, "Procedural Law: %s\n", doc.Snippet)
	}
	for _, hc := range state.HistoricCases {
		fmt.Fprintf(&b, "Similar Case: %s\n", hc.Summary)
	}

	analysis, err := p.generate(ctx, complexityPrompt, b.String())
	if err != nil {
		log.Printf("Warning: complexity analysis failed, using %s: %v", p.policies.DefaultComplexity, err)
		return p.policies.DefaultComplexity
	}

	lower := strings.ToLower(analysis)
	if strings.Contains(lower, "appeal") {
		state.CaseFacts["appeal_expected"] = "true"
	}

	switch {
	case strings.Contains(lower, "high"):
		return estimator.ComplexityHigh
	case strings.Contains(lower, "low"):
		return estimator.ComplexityLow
	default:
		return p.policies.DefaultComplexity
	}
}
