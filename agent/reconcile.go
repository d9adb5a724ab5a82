package agent

import (
	"regexp"
	"strconv"
)

var (
	scorePattern     = regexp.MustCompile(`(?i)SCORE:\s*(\d{1,3})`)
	bareIntPattern   = regexp.MustCompile(`\b(\d{1,3})\b`)
	reasoningPattern = regexp.MustCompile(`(?is)REASONING:\s*(.+)`)
)

// ClampToBaseline constrains a model score to the deviation band around
// the deterministic baseline: [max(1, baseline-band), min(100,
// baseline+band)]. It reports whether the score was moved. Pure function;
// the band keeps case-specific model nuance while preventing the model
// from overriding empirically grounded baselines.
func ClampToBaseline(baseline, score, band int) (int, bool) {
	low := baseline - band
	if low < 1 {
		low = 1
	}
	high := baseline + band
	if high > 100 {
		high = 100
	}

	if score < low {
		return low, true
	}
	if score > high {
		return high, true
	}
	return score, false
}

// ParseScore extracts the likelihood score from a model response: a
// "SCORE: <n>" token wins, otherwise the first bare integer in [1,100]
// anywhere in the text, otherwise the default.
func ParseScore(content string, defaultScore int) int {
	if m := scorePattern.FindStringSubmatch(content); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 100 {
			return n
		}
	}

	for _, m := range bareIntPattern.FindAllStringSubmatch(content, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 100 {
			return n
		}
	}

	return defaultScore
}

// ParseReasoning extracts the "REASONING:" segment from a model response,
// falling back to the full response text.
func ParseReasoning(content string) string {
	if m := reasoningPattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return content
}
