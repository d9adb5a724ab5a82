// Package classifier maps free-text case descriptions to the closed legal
// category set. The flag classifier itself is an external collaborator;
// the deterministic flag-to-category resolution lives here.
package classifier

import (
	"context"

	"casetriage-backend/models"
)

// Flags are the per-domain booleans produced by the classification
// collaborator.
type Flags struct {
	EmploymentLaw bool `json:"employment_law"`
	RealEstateLaw bool `json:"real_estate_law"`
	TrafficLaw    bool `json:"traffic_law"`
}

// Classifier is the external classification contract. Implementations may
// fail; callers resolve failures to the catch-all category instead of
// propagating.
type Classifier interface {
	Classify(ctx context.Context, text string) (Flags, error)
}

// Confidence levels of the precedence table.
const (
	ConfidenceSingleFlag = 0.85
	ConfidenceAmbiguous  = 0.60
	ConfidenceNoFlag     = 0.70
	ConfidenceFailure    = 0.50
)

// Resolve maps a flag combination to a category with a deterministic
// precedence table: exactly one flag yields that category, anything
// ambiguous or unmatched yields the catch-all.
func Resolve(flags Flags) models.CategoryResult {
	var matched []models.Category
	if flags.EmploymentLaw {
		matched = append(matched, models.CategoryEmployment)
	}
	if flags.RealEstateLaw {
		matched = append(matched, models.CategoryRealEstate)
	}
	if flags.TrafficLaw {
		matched = append(matched, models.CategoryTrafficCrimina)
	}

	switch len(matched) {
	case 1:
		return models.CategoryResult{Category: matched[0], Confidence: ConfidenceSingleFlag}
	case 0:
		return models.CategoryResult{Category: models.CategoryOther, Confidence: ConfidenceNoFlag}
	default:
		return models.CategoryResult{Category: models.CategoryOther, Confidence: ConfidenceAmbiguous}
	}
}

// ResolveFailure is the result used when the classifier itself failed.
// Classifier errors never surface to the caller.
func ResolveFailure() models.CategoryResult {
	return models.CategoryResult{Category: models.CategoryOther, Confidence: ConfidenceFailure}
}
