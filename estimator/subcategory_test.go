package estimator

import (
	"testing"

	"casetriage-backend/models"
)

func TestExtractSubcategory(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category models.Category
		want     Subcategory
	}{
		{"unpaid wages", "My employer has not paid my salary for 3 months", models.CategoryEmployment, SubUnpaidWages},
		{"german wage term", "Mein Lohn wurde nicht bezahlt", models.CategoryEmployment, SubUnpaidWages},
		{"illness dismissal", "I was dismissed while on sick leave", models.CategoryEmployment, SubDismissalDuringIllness},
		{"summary dismissal", "I was fired on the spot without notice", models.CategoryEmployment, SubSummaryDismissal},
		{"workload", "My overtime hours keep increasing without compensation", models.CategoryEmployment, SubWorkloadIncrease},
		{"employment default", "Dispute with my employer about my reference letter", models.CategoryEmployment, SubTerminationPoorPerformance},
		{"dui", "I was caught drunk driving with 1.2 per mille", models.CategoryTrafficCrimina, SubDrivingUnderInfluence},
		{"parking accident", "Someone hit my parked car in an accident", models.CategoryTrafficCrimina, SubParkingAccident},
		{"parking fine", "I got a parking ticket after the meter expired", models.CategoryTrafficCrimina, SubParkingFineExpired},
		{"speeding", "I was flashed speeding outside town", models.CategoryTrafficCrimina, SubModerateSpeeding},
		{"penalty order", "I received a penalty order with a fine", models.CategoryTrafficCrimina, SubAlcoholPenaltyOrder},
		{"traffic default", "My license situation is unclear", models.CategoryTrafficCrimina, SubModerateSpeeding},
		{"unsupported category", "Rent increase dispute", models.CategoryRealEstate, SubNone},
		{"empty text employment", "", models.CategoryEmployment, SubTerminationPoorPerformance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSubcategory(tt.text, tt.category)
			if got != tt.want {
				t.Errorf("ExtractSubcategory(%q, %s) = %q, want %q", tt.text, tt.category, got, tt.want)
			}
		})
	}
}

func TestLookupUnknownPairs(t *testing.T) {
	for _, category := range []models.Category{models.CategoryRealEstate, models.CategoryOther} {
		b := Lookup(category, SubNone)
		if b.Known() {
			t.Errorf("Lookup(%s, none) should be unknown, got %+v", category, b)
		}
	}

	if b := Lookup(models.CategoryEmployment, SubModerateSpeeding); b.Known() {
		t.Errorf("cross-category lookup should be unknown, got %+v", b)
	}
}

func TestLookupCoversEverySupportedSubcategory(t *testing.T) {
	supported := map[models.Category][]Subcategory{
		models.CategoryEmployment: {
			SubTerminationPoorPerformance, SubWorkloadIncrease, SubUnpaidWages,
			SubSummaryDismissal, SubDismissalDuringIllness,
		},
		models.CategoryTrafficCrimina: {
			SubModerateSpeeding, SubDrivingUnderInfluence, SubParkingAccident,
			SubParkingFineExpired, SubAlcoholPenaltyOrder,
		},
	}

	for category, subs := range supported {
		for _, sub := range subs {
			b := Lookup(category, sub)
			if !b.Known() {
				t.Errorf("Lookup(%s, %s) missing from table", category, sub)
				continue
			}
			if _, ok := ParseLikelihood(b.Likelihood); !ok {
				t.Errorf("%s/%s: likelihood %q unparseable", category, sub, b.Likelihood)
			}
			if _, ok := ParseTime(b.Time); !ok {
				t.Errorf("%s/%s: time %q unparseable", category, sub, b.Time)
			}
			if _, ok := ParseCost(b.Cost); !ok {
				t.Errorf("%s/%s: cost %q unparseable", category, sub, b.Cost)
			}
		}
	}
}
