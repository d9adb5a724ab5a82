package estimator

import (
	"casetriage-backend/models"
)

// Complexity is the model-assessed complexity tier of a case.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// FallbackConfig holds the tunable rates of the fallback calculator.
type FallbackConfig struct {
	HourlyRateLawyer float64 // CHF per hour
	VATRate          float64 // e.g. 0.077
}

// DefaultFallbackConfig returns the canonical Swiss defaults.
func DefaultFallbackConfig() FallbackConfig {
	return FallbackConfig{
		HourlyRateLawyer: 400,
		VATRate:          0.077,
	}
}

// Month counts per (category, complexity) for cases the baseline table
// does not cover.
var fallbackMonths = map[models.Category]map[Complexity]int{
	models.CategoryEmployment:     {ComplexityLow: 3, ComplexityMedium: 6, ComplexityHigh: 12},
	models.CategoryRealEstate:     {ComplexityLow: 4, ComplexityMedium: 8, ComplexityHigh: 15},
	models.CategoryTrafficCrimina: {ComplexityLow: 2, ComplexityMedium: 4, ComplexityHigh: 8},
	models.CategoryOther:          {ComplexityLow: 3, ComplexityMedium: 6, ComplexityHigh: 12},
}

// FallbackTime estimates duration from the (category, complexity) grid.
func FallbackTime(category models.Category, complexity Complexity) models.TimeEstimate {
	grid, ok := fallbackMonths[category]
	if !ok {
		grid = fallbackMonths[models.CategoryOther]
	}
	months, ok := grid[complexity]
	if !ok {
		months = grid[ComplexityMedium]
	}
	return models.TimeEstimate{Value: months, Unit: models.UnitMonths}
}

// Billable hours per elapsed time unit.
var hoursPerUnit = map[models.TimeUnit]float64{
	models.UnitDays:   8,
	models.UnitWeeks:  40,
	models.UnitMonths: 160,
}

const (
	lawyerShare       = 0.3 // fraction of elapsed time billed by the lawyer
	courtFeeShare     = 0.2 // of lawyer fees
	courtFeeFloor     = 1000.0
	courtFeeCeiling   = 5000.0
	expertWitnessFee  = 2000.0
	expertMonthsLimit = 6.0 // expert fee applies beyond this duration
)

// FallbackCost derives a cost breakdown from a time estimate: lawyer fees
// from billable hours, a bounded court-fee component, an expert-witness
// fee for long proceedings, and VAT on top.
func FallbackCost(t models.TimeEstimate, cfg FallbackConfig) models.CostBreakdown {
	perUnit, ok := hoursPerUnit[t.Unit]
	if !ok {
		perUnit = hoursPerUnit[models.UnitMonths]
	}

	totalHours := float64(t.Value) * perUnit
	lawyerHours := totalHours * lawyerShare
	lawyerFees := lawyerHours * cfg.HourlyRateLawyer

	courtFees := lawyerFees * courtFeeShare
	if courtFees < courtFeeFloor {
		courtFees = courtFeeFloor
	}
	if courtFees > courtFeeCeiling {
		courtFees = courtFeeCeiling
	}

	components := models.CostComponents{
		"lawyer_fees": lawyerFees,
		"court_fees":  courtFees,
	}
	subtotal := lawyerFees + courtFees

	if t.Months() > expertMonthsLimit {
		components["expert_witness_fees"] = expertWitnessFee
		subtotal += expertWitnessFee
	}

	vat := subtotal * cfg.VATRate
	components["vat"] = vat

	return models.CostBreakdown{
		TotalCHF:   subtotal + vat,
		Components: components,
	}
}
