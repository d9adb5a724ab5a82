package agent

import (
	"casetriage-backend/estimator"
)

// Policies holds the tunable constants of the analysis pipeline. The
// defaults are the canonical values; deployments override individual
// fields through pipeline options.
type Policies struct {
	// LikelihoodBand is the maximum deviation, in percentage points, the
	// model score may take from the deterministic baseline.
	LikelihoodBand int

	// MinCategoryConfidence triggers the one-shot clarification round
	// when categorization confidence falls below it.
	MinCategoryConfidence float64

	// DefaultScore is used when the model response carries no parseable
	// score.
	DefaultScore int

	// DefaultComplexity is used when the model response carries no
	// recognizable complexity tier.
	DefaultComplexity estimator.Complexity

	// Call caps per analysis.
	MaxLawCalls     int
	MaxCaseCalls    int
	MaxAskUserCalls int

	// GenerationRaces is the number of concurrent duplicate model calls
	// per generation; the first to complete wins. 1 disables racing.
	GenerationRaces int

	// Fallback holds the rates of the fallback cost calculator.
	Fallback estimator.FallbackConfig
}

// DefaultPolicies returns the canonical policy values.
func DefaultPolicies() Policies {
	return Policies{
		LikelihoodBand:        20,
		MinCategoryConfidence: 0.6,
		DefaultScore:          50,
		DefaultComplexity:     estimator.ComplexityMedium,
		MaxLawCalls:           3,
		MaxCaseCalls:          3,
		MaxAskUserCalls:       1,
		GenerationRaces:       1,
		Fallback:              estimator.DefaultFallbackConfig(),
	}
}

const winLikelihoodPrompt = `Derive a 1-100 likelihood of winning based on retrieved Swiss statutes and historical outcomes for similar fact patterns.

If evidence is thin, lower the score. Be conservative but realistic.
Score ranges:
- 80-100: Very strong case with clear legal support
- 60-79: Good case with solid legal foundation
- 40-59: Moderate case with mixed factors
- 20-39: Weak case with significant challenges
- 1-19: Very weak case with poor prospects

Respond in exactly this format:
SCORE: <number 1-100>
REASONING: <brief reasoning>`

const complexityPrompt = `You analyze Swiss legal cases to estimate proceedings time and cost.

Based on the case description and legal context, assess:
1. Complexity level (low/medium/high)
2. Likely court level if not specified
3. Whether appeals are expected
4. Any procedural complications

Respond with a brief analysis mentioning these factors.`

const clarifyPrompt = `The legal category of the following case description is unclear. Formulate one single, precise question to the client that would resolve the classification. Output only the question.`

const finalAnswerPrompt = `Use all of the following information about a legal case estimation and provide a final, user-friendly customer-facing answer.

Rules:
- Make sure your answer is as short as possible, concise and contains all relevant information according to the findings.
- Make sure your answer is actionable and gives clear guidance on whether the case is worth pursuing or not.
- If you're missing any information, state this clearly in the answer provided.
- Your answer must be formulated in a customer-friendly way.
- In your answer you must mention similar cases to give a good overview to the customer.`
