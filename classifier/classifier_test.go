package classifier

import (
	"context"
	"errors"
	"testing"

	"casetriage-backend/models"
)

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name           string
		flags          Flags
		wantCategory   models.Category
		wantConfidence float64
	}{
		{"employment only", Flags{EmploymentLaw: true}, models.CategoryEmployment, ConfidenceSingleFlag},
		{"real estate only", Flags{RealEstateLaw: true}, models.CategoryRealEstate, ConfidenceSingleFlag},
		{"traffic only", Flags{TrafficLaw: true}, models.CategoryTrafficCrimina, ConfidenceSingleFlag},
		{"two flags ambiguous", Flags{EmploymentLaw: true, TrafficLaw: true}, models.CategoryOther, ConfidenceAmbiguous},
		{"all flags ambiguous", Flags{EmploymentLaw: true, RealEstateLaw: true, TrafficLaw: true}, models.CategoryOther, ConfidenceAmbiguous},
		{"no flags", Flags{}, models.CategoryOther, ConfidenceNoFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.flags)
			if got.Category != tt.wantCategory || got.Confidence != tt.wantConfidence {
				t.Errorf("Resolve(%+v) = %+v, want {%s %v}", tt.flags, got, tt.wantCategory, tt.wantConfidence)
			}
		})
	}
}

func TestResolveFailure(t *testing.T) {
	got := ResolveFailure()
	if got.Category != models.CategoryOther || got.Confidence != ConfidenceFailure {
		t.Errorf("ResolveFailure() = %+v", got)
	}
}

// stubGenerator returns a fixed response for classifier parsing tests.
type stubGenerator struct {
	content string
	err     error
}

func (s *stubGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	return s.content, s.err
}

func TestGeminiClassifierParsesFlags(t *testing.T) {
	c := NewGeminiClassifier(&stubGenerator{
		content: "```json\n{\"employment_law\": true, \"real_estate_law\": false, \"traffic_law\": false}\n```",
	})

	flags, err := c.Classify(context.Background(), "unpaid wages")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !flags.EmploymentLaw || flags.RealEstateLaw || flags.TrafficLaw {
		t.Errorf("Classify flags = %+v", flags)
	}
}

func TestGeminiClassifierPropagatesErrors(t *testing.T) {
	c := NewGeminiClassifier(&stubGenerator{err: errors.New("model unavailable")})
	if _, err := c.Classify(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from failing generator")
	}

	c = NewGeminiClassifier(&stubGenerator{content: "not json"})
	if _, err := c.Classify(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from unparseable response")
	}
}
