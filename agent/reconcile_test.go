package agent

import (
	"testing"
)

func TestClampToBaseline(t *testing.T) {
	tests := []struct {
		name        string
		baseline    int
		score       int
		want        int
		wantClamped bool
	}{
		{"overconfident model on hopeless baseline", 12, 95, 32, true},
		{"within band above", 50, 65, 65, false},
		{"within band below", 50, 35, 35, false},
		{"exactly upper boundary", 50, 70, 70, false},
		{"exactly lower boundary", 50, 30, 30, false},
		{"below band", 50, 20, 30, true},
		{"low baseline floors at 1", 5, 1, 1, false},
		{"high baseline caps at 100", 95, 100, 100, false},
		{"band never exceeds 100", 90, 100, 100, false},
		{"pessimistic model on strong baseline", 95, 10, 75, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := ClampToBaseline(tt.baseline, tt.score, 20)
			if got != tt.want || clamped != tt.wantClamped {
				t.Errorf("ClampToBaseline(%d, %d, 20) = (%d, %v), want (%d, %v)",
					tt.baseline, tt.score, got, clamped, tt.want, tt.wantClamped)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"score token", "SCORE: 72\nREASONING: solid statutory basis", 72},
		{"score token lowercase", "score: 33", 33},
		{"bare integer fallback", "I would estimate around 40 given the evidence.", 40},
		{"out of range integers skipped", "Given 500 pages of evidence, 65 seems right.", 65},
		{"nothing parseable", "The case is difficult to assess.", 50},
		{"empty response", "", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseScore(tt.content, 50); got != tt.want {
				t.Errorf("ParseScore(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestParseReasoning(t *testing.T) {
	content := "SCORE: 60\nREASONING: The statute clearly supports\nthe claim."
	got := ParseReasoning(content)
	want := "The statute clearly supports\nthe claim."
	if got != want {
		t.Errorf("ParseReasoning() = %q, want %q", got, want)
	}

	// Without the marker the full text is the reasoning.
	if got := ParseReasoning("just an opinion"); got != "just an opinion" {
		t.Errorf("ParseReasoning fallback = %q", got)
	}
}
