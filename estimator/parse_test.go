package estimator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"casetriage-backend/models"
)

func TestParseLikelihood(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{"range midpoint floors", "10–15% (usually hopeless unless technical errors)", 12, true},
		{"range midpoint even", "50–60% (good if insurance involved; depends on proof)", 55, true},
		{"range midpoint alcohol", "20–30% (low, slightly better if strong evidence)", 25, true},
		{"single percent passes through", "20%", 20, true},
		{"full certainty capped", "100%", 95, true},
		{"zero percent clamped to one", "0%", 1, true},
		{"below-ten anchors low", "<10% (almost hopeless, mandatory withdrawal)", 5, true},
		{"hopeless anchors low", "almost hopeless", 5, true},
		{"good anchor", "good prospects", 65, true},
		{"strong anchor", "strong case", 65, true},
		{"weak anchor", "weak position", 25, true},
		{"moderate anchor", "moderate chances", 50, true},
		{"unknown sentinel", Unknown, 0, false},
		{"empty string", "", 0, false},
		{"no signal", "depends entirely on the judge", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLikelihood(tt.raw)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseLikelihood(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseLikelihoodIsPure(t *testing.T) {
	raw := "10–15% (usually hopeless unless technical errors)"
	for i := 0; i < 50; i++ {
		got, ok := ParseLikelihood(raw)
		if !ok || got != 12 {
			t.Fatalf("call %d: ParseLikelihood(%q) = (%d, %v), want (12, true)", i, raw, got, ok)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.TimeEstimate
		ok   bool
	}{
		{
			name: "contested clause preferred",
			raw:  "Paid: 30 days; Contested: 3–6 months+",
			want: models.TimeEstimate{Value: 5, Unit: models.UnitMonths},
			ok:   true,
		},
		{
			name: "single clause range rounds to nearest",
			raw:  "6–12 months+",
			want: models.TimeEstimate{Value: 9, Unit: models.UnitMonths},
			ok:   true,
		},
		{
			name: "plain value with capitalized unit",
			raw:  "3 Months",
			want: models.TimeEstimate{Value: 3, Unit: models.UnitMonths},
			ok:   true,
		},
		{
			name: "zero months is legitimate",
			raw:  "0 Months",
			want: models.TimeEstimate{Value: 0, Unit: models.UnitMonths},
			ok:   true,
		},
		{
			name: "range within one to six",
			raw:  "1–6 months",
			want: models.TimeEstimate{Value: 4, Unit: models.UnitMonths},
			ok:   true,
		},
		{
			name: "days unit",
			raw:  "30 days",
			want: models.TimeEstimate{Value: 30, Unit: models.UnitDays},
			ok:   true,
		},
		{name: "unknown sentinel", raw: Unknown, ok: false},
		{name: "no unit", raw: "3–6", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseTime(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTime(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseCost(t *testing.T) {
	raw := "Fine: CHF 240; Lawyer: CHF 1,000–5,000; Court: CHF 300–3,000"
	got, ok := ParseCost(raw)
	if !ok {
		t.Fatalf("ParseCost(%q) not ok", raw)
	}

	want := models.CostBreakdown{
		TotalCHF: 4890,
		Components: models.CostComponents{
			"Fine":   240,
			"Lawyer": 3000,
			"Court":  1650,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseCost(%q) mismatch (-want +got):\n%s", raw, diff)
	}
}

func TestParseCostFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{"plain number", "3500", 3500, true},
		{"zero cost", "0", 0, true},
		{"largest bare number wins", "Deductible CHF 200–1,000; private lawyer CHF 1,000–4,000", 4000, true},
		{"no number at all", "depends on the insurer", DefaultCostCHF, true},
		{"unknown sentinel", Unknown, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCost(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseCost(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got.TotalCHF != tt.want {
				t.Errorf("ParseCost(%q).TotalCHF = %v, want %v", tt.raw, got.TotalCHF, tt.want)
			}
		})
	}
}

func TestParseCostComponentsNonNegative(t *testing.T) {
	for category, subs := range baselineTable {
		for sub, baseline := range subs {
			got, ok := ParseCost(baseline.Cost)
			if !ok {
				t.Errorf("%s/%s: cost %q did not parse", category, sub, baseline.Cost)
				continue
			}
			for label, amount := range got.Components {
				if amount < 0 {
					t.Errorf("%s/%s: component %q is negative: %v", category, sub, label, amount)
				}
			}
		}
	}
}
