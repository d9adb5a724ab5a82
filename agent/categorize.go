package agent

import (
	"context"
	"fmt"
	"log"

	"casetriage-backend/classifier"
	"casetriage-backend/estimator"
	"casetriage-backend/models"
)

// categorize resolves the case category through the classifier
// collaborator. Classifier failures resolve to the catch-all category
// with low confidence and are never propagated. When confidence falls
// below the threshold and a human-input collaborator is available, one
// clarification round re-runs classification on the augmented text.
func (p *Pipeline) categorize(ctx context.Context, state *State) {
	result := p.classifyOnce(ctx, state.CaseInput.Text)

	if result.Confidence < p.policies.MinCategoryConfidence {
		if augmented, ok := p.clarify(ctx, state); ok {
			result = p.classifyOnce(ctx, augmented)
		}
	}

	state.Category = &result
	state.CaseFacts["category"] = string(result.Category)

	if result.Category != models.CategoryOther {
		state.Subcategory = estimator.ExtractSubcategory(state.CaseInput.Text, result.Category)
	}
}

func (p *Pipeline) classifyOnce(ctx context.Context, text string) models.CategoryResult {
	if p.classifier == nil {
		return classifier.ResolveFailure()
	}

	flags, err := p.classifier.Classify(ctx, text)
	if err != nil {
		log.Printf("Warning: classifier failed, using catch-all category: %v", err)
		return classifier.ResolveFailure()
	}

	return classifier.Resolve(flags)
}

// clarify runs at most one question/answer round with the human-input
// collaborator and returns the augmented case text.
func (p *Pipeline) clarify(ctx context.Context, state *State) (string, bool) {
	if p.askUser == nil || state.AskUserCalls >= p.policies.MaxAskUserCalls {
		return "", false
	}
	state.AskUserCalls++

	question, err := p.generate(ctx, clarifyPrompt, state.CaseInput.Text)
	if err != nil {
		log.Printf("Warning: failed to generate clarification question: %v", err)
		return "", false
	}

	answer, err := p.askUser.Ask(ctx, question)
	if err != nil || answer == "" {
		log.Printf("Warning: clarification round yielded no answer: %v", err)
		return "", false
	}

	state.addExplanation("Classification refined after one clarification round")
	return fmt.Sprintf("%s\n\nAdditional information: %s", state.CaseInput.Text, answer), true
}
