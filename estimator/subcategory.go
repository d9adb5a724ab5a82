package estimator

import (
	"strings"

	"casetriage-backend/models"
)

// ExtractSubcategory determines the case sub-issue from the description
// text by keyword matching. Best-effort and deterministic: the same text
// always yields the same subcategory. Categories without table coverage
// return SubNone.
func ExtractSubcategory(caseText string, category models.Category) Subcategory {
	if caseText == "" {
		return defaultSubcategory(category)
	}

	text := strings.ToLower(caseText)

	switch category {
	case models.CategoryEmployment:
		switch {
		case containsAny(text, "salary", "wage", "pay", "lohn"):
			return SubUnpaidWages
		case containsAny(text, "illness", "sick", "krankheit", "unfall"):
			return SubDismissalDuringIllness
		case containsAny(text, "dismissal", "fired", "fristlos"):
			return SubSummaryDismissal
		case containsAny(text, "workload", "overtime", "work hours"):
			return SubWorkloadIncrease
		default:
			return SubTerminationPoorPerformance
		}

	case models.CategoryTrafficCrimina:
		switch {
		case containsAny(text, "alcohol", "drunk", "dui"):
			return SubDrivingUnderInfluence
		case containsAny(text, "parking", "parked"):
			if strings.Contains(text, "accident") {
				return SubParkingAccident
			}
			return SubParkingFineExpired
		case containsAny(text, "speeding", "speed", "fast"):
			return SubModerateSpeeding
		case containsAny(text, "penalty", "fine"):
			return SubAlcoholPenaltyOrder
		default:
			return SubModerateSpeeding
		}
	}

	return SubNone
}

func defaultSubcategory(category models.Category) Subcategory {
	switch category {
	case models.CategoryEmployment:
		return SubTerminationPoorPerformance
	case models.CategoryTrafficCrimina:
		return SubModerateSpeeding
	default:
		return SubNone
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
