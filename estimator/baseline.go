// Package estimator provides the deterministic business-logic estimates for
// Swiss legal cases: a finite (category, subcategory) lookup table of
// likelihood/time/cost figures curated by the legal team, parsers for the
// table's human-readable string formats, and a generic fallback calculator
// for combinations the table does not cover.
package estimator

import (
	"casetriage-backend/models"
)

// Unknown is the sentinel returned for any (category, subcategory) pair
// absent from the baseline table.
const Unknown = "unknown"

// Subcategory identifies a case sub-issue within a legal category.
type Subcategory string

const (
	// Employment law
	SubTerminationPoorPerformance Subcategory = "termination_poor_performance"
	SubWorkloadIncrease           Subcategory = "increase_in_workload"
	SubUnpaidWages                Subcategory = "unpaid_wages"
	SubSummaryDismissal           Subcategory = "summary_dismissal"
	SubDismissalDuringIllness     Subcategory = "dismissal_during_illness"

	// Traffic criminal law
	SubModerateSpeeding      Subcategory = "moderate_speeding"
	SubDrivingUnderInfluence Subcategory = "driving_under_influence"
	SubParkingAccident       Subcategory = "parking_lot_accident"
	SubParkingFineExpired    Subcategory = "parking_fine_expired"
	SubAlcoholPenaltyOrder   Subcategory = "alcohol_penalty_order"

	// SubNone means no subcategory could be determined.
	SubNone Subcategory = ""
)

// Baseline holds the raw table figures for one (category, subcategory)
// pair. The strings are the legal team's original wording; callers parse
// them through ParseLikelihood/ParseTime/ParseCost rather than touching
// them directly.
type Baseline struct {
	Likelihood string
	Time       string
	Cost       string
}

// Known reports whether the table covers this entry at all.
func (b Baseline) Known() bool {
	return b.Likelihood != Unknown
}

// The baseline table. Figures come from case statistics and practitioner
// experience; the wording is preserved verbatim because the parsers encode
// its conventions (ranges, qualitative anchors, clause lists).
var baselineTable = map[models.Category]map[Subcategory]Baseline{
	models.CategoryTrafficCrimina: {
		SubModerateSpeeding: {
			Likelihood: "10–15% (usually hopeless unless technical errors)",
			Time:       "Paid: 30 days; Contested: 3–6 months+",
			Cost:       "Fine: CHF 240; Admin fees: CHF 0–600; Lawyer: CHF 1,000–5,000; Court: CHF 300–3,000",
		},
		SubDrivingUnderInfluence: {
			Likelihood: "<10% (almost hopeless, mandatory withdrawal)",
			Time:       "6–12 months+",
			Cost:       "Fine: CHF 500–10,000; Road Traffic fees: CHF 400–1,000; Assessment: CHF 1,500–3,000; Lawyer: CHF 2,000–8,000",
		},
		SubParkingAccident: {
			Likelihood: "50–60% (good if insurance involved; depends on proof)",
			Time:       "1–6 months",
			Cost:       "Deductible CHF 200–1,000; Lawyer usually unnecessary (insurance covers); private lawyer CHF 1,000–4,000",
		},
		SubParkingFineExpired: {
			Likelihood: "<10% (hopeless)",
			Time:       "Paid: 30 days; Contested: 3–6 months",
			Cost:       "Fine: CHF 40–80; Lawyer: CHF 500–2,000; Court: CHF 300–1,000",
		},
		SubAlcoholPenaltyOrder: {
			Likelihood: "20–30% (low, slightly better if strong evidence)",
			Time:       "3–6 months",
			Cost:       "Fine: CHF 500–1,000; Road Traffic fees: CHF 200–1,000; Lawyer: CHF 1,000–3,000; Court: CHF 500–3,000",
		},
	},
	models.CategoryEmployment: {
		SubTerminationPoorPerformance: {
			Likelihood: "20%",
			Time:       "3 Months",
			Cost:       "3500",
		},
		SubWorkloadIncrease: {
			Likelihood: "0%",
			Time:       "0 Months",
			Cost:       "0",
		},
		SubUnpaidWages: {
			Likelihood: "100%",
			Time:       "5 Months",
			Cost:       "5000",
		},
		SubSummaryDismissal: {
			Likelihood: "80%",
			Time:       "6 Months",
			Cost:       "2500",
		},
		SubDismissalDuringIllness: {
			Likelihood: "100%",
			Time:       "3 Months",
			Cost:       "1500",
		},
	},
}

// Lookup returns the baseline figures for a (category, subcategory) pair.
// Pure function: same inputs always yield the same result. Pairs outside
// the table return the Unknown sentinel in every field.
func Lookup(category models.Category, sub Subcategory) Baseline {
	if subs, ok := baselineTable[category]; ok {
		if b, ok := subs[sub]; ok {
			return b
		}
	}
	return Baseline{Likelihood: Unknown, Time: Unknown, Cost: Unknown}
}
