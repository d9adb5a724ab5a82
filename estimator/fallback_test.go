package estimator

import (
	"math"
	"testing"

	"casetriage-backend/models"
)

func TestFallbackTimeGrid(t *testing.T) {
	tests := []struct {
		category   models.Category
		complexity Complexity
		wantMonths int
	}{
		{models.CategoryEmployment, ComplexityLow, 3},
		{models.CategoryEmployment, ComplexityMedium, 6},
		{models.CategoryEmployment, ComplexityHigh, 12},
		{models.CategoryRealEstate, ComplexityLow, 4},
		{models.CategoryRealEstate, ComplexityMedium, 8},
		{models.CategoryRealEstate, ComplexityHigh, 15},
		{models.CategoryTrafficCrimina, ComplexityLow, 2},
		{models.CategoryTrafficCrimina, ComplexityMedium, 4},
		{models.CategoryTrafficCrimina, ComplexityHigh, 8},
		{models.CategoryOther, ComplexityMedium, 6},
	}

	for _, tt := range tests {
		got := FallbackTime(tt.category, tt.complexity)
		want := models.TimeEstimate{Value: tt.wantMonths, Unit: models.UnitMonths}
		if got != want {
			t.Errorf("FallbackTime(%s, %s) = %+v, want %+v", tt.category, tt.complexity, got, want)
		}
	}
}

func TestFallbackTimeUnknownComplexityDefaultsToMedium(t *testing.T) {
	got := FallbackTime(models.CategoryEmployment, Complexity("weird"))
	if got.Value != 6 {
		t.Errorf("unknown complexity should use medium grid: got %d months", got.Value)
	}
}

func TestFallbackCostShortCase(t *testing.T) {
	// 4 months: 640 hours elapsed, 192 lawyer hours at 400 CHF = 76800.
	// Court fees 20% = 15360, capped at 5000. No expert fee under 6 months.
	cost := FallbackCost(models.TimeEstimate{Value: 4, Unit: models.UnitMonths}, DefaultFallbackConfig())

	if got := cost.Components["lawyer_fees"]; got != 76800 {
		t.Errorf("lawyer_fees = %v, want 76800", got)
	}
	if got := cost.Components["court_fees"]; got != 5000 {
		t.Errorf("court_fees = %v, want capped 5000", got)
	}
	if _, ok := cost.Components["expert_witness_fees"]; ok {
		t.Error("expert fee must not apply under 6 months")
	}

	subtotal := 76800.0 + 5000.0
	wantTotal := subtotal * 1.077
	if math.Abs(cost.TotalCHF-wantTotal) > 0.01 {
		t.Errorf("TotalCHF = %v, want %v", cost.TotalCHF, wantTotal)
	}
}

func TestFallbackCostLongCaseAddsExpertFee(t *testing.T) {
	cost := FallbackCost(models.TimeEstimate{Value: 8, Unit: models.UnitMonths}, DefaultFallbackConfig())
	if got := cost.Components["expert_witness_fees"]; got != expertWitnessFee {
		t.Errorf("expert_witness_fees = %v, want %v", got, expertWitnessFee)
	}
}

func TestFallbackCostCourtFeeFloor(t *testing.T) {
	// 1 day: 8 hours elapsed, 2.4 lawyer hours = 960 CHF; 20% = 192,
	// raised to the 1000 floor.
	cost := FallbackCost(models.TimeEstimate{Value: 1, Unit: models.UnitDays}, DefaultFallbackConfig())
	if got := cost.Components["court_fees"]; got != courtFeeFloor {
		t.Errorf("court_fees = %v, want floor %v", got, courtFeeFloor)
	}
}

func TestFallbackCostComponentsSumToTotal(t *testing.T) {
	cost := FallbackCost(models.TimeEstimate{Value: 9, Unit: models.UnitMonths}, DefaultFallbackConfig())
	var sum float64
	for _, v := range cost.Components {
		sum += v
	}
	if math.Abs(sum-cost.TotalCHF) > 0.01 {
		t.Errorf("component sum %v != total %v", sum, cost.TotalCHF)
	}
}
