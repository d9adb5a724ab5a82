package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"casetriage-backend/estimator"
)

// winLikelihood gathers evidence, obtains a model judgment and reconciles
// it against the deterministic baseline under the deviation band.
func (p *Pipeline) winLikelihood(ctx context.Context, state *State) {
	p.gatherEvidence(ctx, state)

	category := state.category()
	baseline := estimator.Lookup(category, state.Subcategory)
	baselineScore, hasBaseline := estimator.ParseLikelihood(baseline.Likelihood)

	prompt := p.buildLikelihoodPrompt(state, baseline.Likelihood, baselineScore, hasBaseline)

	content, err := p.generate(ctx, winLikelihoodPrompt, prompt)
	if err != nil {
		log.Printf("Warning: likelihood generation failed, using default score: %v", err)
		content = ""
	}

	score := ParseScore(content, p.policies.DefaultScore)
	reasoning := strings.TrimSpace(ParseReasoning(content))

	if hasBaseline {
		clamped, wasClamped := ClampToBaseline(baselineScore, score, p.policies.LikelihoodBand)
		if wasClamped {
			reasoning = fmt.Sprintf(
				"%s | Model score %d adjusted to %d to stay within %d points of the business logic baseline of %d",
				reasoning, score, clamped, p.policies.LikelihoodBand, baselineScore,
			)
		}
		score = clamped
		state.addExplanation(fmt.Sprintf("Business logic baseline: %s (%d%%)", baseline.Likelihood, baselineScore))
	} else {
		state.addExplanation(fmt.Sprintf("Business logic does not cover %s/%s, model score used directly", category, state.Subcategory))
	}

	if reasoning != "" {
		state.addExplanation(reasoning)
	}

	state.LikelihoodWin = &score
}

func (p *Pipeline) buildLikelihoodPrompt(state *State, rawBaseline string, baselineScore int, hasBaseline bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Case Category: %s\n", state.category())
	fmt.Fprintf(&b, "Case Description: %s\n", state.CaseInput.Text)

	if len(state.LawDocs) > 0 {
		b.WriteString("\nRelevant Swiss Law:\n")
		for _, doc := range state.LawDocs {
			fmt.Fprintf(&b, "- %s: %s\n", doc.Title, doc.Snippet)
		}
	}

	if len(state.HistoricCases) > 0 {
		b.WriteString("\nSimilar Historic Cases:\n")
		for _, hc := range state.HistoricCases {
			fmt.Fprintf(&b, "- %d %s: %s -> %s\n", hc.Year, hc.Court, hc.Summary, hc.Outcome)
		}
	}

	if hasBaseline {
		fmt.Fprintf(&b, "\nBusiness logic suggests %d%% (raw estimate: %s). Treat this as your anchor; deviate only for case-specific factors.\n", baselineScore, rawBaseline)
	}

	return b.String()
}
