package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// prepareFinalAnswer composes the customer-facing narrative from the
// aggregated result. Failure leaves the field unset; the structured
// result stands on its own.
func (p *Pipeline) prepareFinalAnswer(ctx context.Context, state *State) {
	if state.Result == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Determined Case Category: %s\n", state.Result.Category)
	fmt.Fprintf(&b, "Likelihood to win the case: %s\n", orNotAvailable(state.Result.LikelihoodWin))
	fmt.Fprintf(&b, "Estimated time: %s\n", orNotAvailable(state.Result.EstimatedTime))
	fmt.Fprintf(&b, "Estimated cost: %s\n", orNotAvailable(state.Result.EstimatedCost))
	fmt.Fprintf(&b, "Explanation: %s\n", state.Result.Explanation)

	if len(state.HistoricCases) > 0 {
		b.WriteString("Similar cases:\n")
		for _, hc := range state.HistoricCases {
			fmt.Fprintf(&b, "- %d %s: %s -> %s\n", hc.Year, hc.Court, hc.Summary, hc.Outcome)
		}
	}

	answer, err := p.generate(ctx, finalAnswerPrompt, b.String())
	if err != nil {
		log.Printf("Warning: final answer generation failed, returning structured result only: %v", err)
		return
	}

	answer = strings.TrimSpace(answer)
	if answer != "" {
		state.Result.FinalAnswer = &answer
	}
}

func orNotAvailable(s *string) string {
	if s == nil {
		return "not available"
	}
	return *s
}
