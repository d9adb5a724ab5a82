package agent

import (
	"fmt"
	"strings"

	"casetriage-backend/models"
)

// AggregationError is the one surfaced pipeline error: a supported
// category reached aggregation without a required estimate. Failing
// loudly is deliberate; a silently defaulted figure would be a misleading
// legal estimate.
type AggregationError struct {
	Field    string
	Category models.Category
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed: missing %s for category %s", e.Field, e.Category)
}

// aggregate validates the collected estimates and normalizes them into
// the output contract. The catch-all category always succeeds with null
// estimates; every other category requires all three.
func (p *Pipeline) aggregate(state *State) error {
	category := state.category()

	if category == models.CategoryOther {
		explanation := joinExplanation(state.ExplanationParts)
		if explanation == "" {
			explanation = "Category 'Andere' - analysis tools not applicable for this case type"
		}
		state.Result = &models.AgentOutput{
			Category:        string(category),
			Explanation:     explanation,
			SourceDocuments: sourceDocs(state),
		}
		return nil
	}

	if state.LikelihoodWin == nil {
		return &AggregationError{Field: "likelihood_win", Category: category}
	}
	if state.TimeEstimate == nil {
		return &AggregationError{Field: "time_estimate", Category: category}
	}
	if state.CostEstimate == nil {
		return &AggregationError{Field: "cost_estimate", Category: category}
	}

	likelihood := renderLikelihood(*state.LikelihoodWin)
	timeStr := renderTime(*state.TimeEstimate)
	costStr := renderCost(*state.CostEstimate)

	state.Result = &models.AgentOutput{
		Category:        string(category),
		LikelihoodWin:   &likelihood,
		EstimatedTime:   &timeStr,
		EstimatedCost:   &costStr,
		Explanation:     joinExplanation(state.ExplanationParts),
		SourceDocuments: sourceDocs(state),
	}
	return nil
}

// renderLikelihood clamps defensively to [1,100] and formats as a
// percentage string.
func renderLikelihood(n int) string {
	if n < 1 {
		n = 1
	}
	if n > 100 {
		n = 100
	}
	return fmt.Sprintf("%d%%", n)
}

// renderTime formats a time estimate with correct singular/plural unit.
func renderTime(t models.TimeEstimate) string {
	unit := string(t.Unit)
	if t.Value == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%d %s", t.Value, unit)
}

// renderCost formats the headline cost string. The component breakdown,
// when present, stays on the CostBreakdown and is not shown here.
func renderCost(c models.CostBreakdown) string {
	return fmt.Sprintf("%d CHF", int(c.TotalCHF))
}

func joinExplanation(parts []string) string {
	return strings.Join(parts, " | ")
}

func sourceDocs(state *State) []models.Doc {
	if state.SourceDocuments == nil {
		return []models.Doc{}
	}
	return state.SourceDocuments
}
