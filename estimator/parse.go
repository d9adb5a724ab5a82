package estimator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"casetriage-backend/models"
)

// Percentages never reach 100: the table's "100%" entries are capped here
// so the system never claims absolute certainty.
const certaintyCap = 95

// DefaultCostCHF is applied when a cost string contains no number at all.
const DefaultCostCHF = 5000

var (
	percentRangePattern  = regexp.MustCompile(`(\d+)\s*[–-]\s*(\d+)%`)
	percentBelowPattern  = regexp.MustCompile(`<\s*\d+%`)
	percentSinglePattern = regexp.MustCompile(`(\d+)%`)

	numberRangePattern  = regexp.MustCompile(`(\d+)\s*[–-]\s*(\d+)`)
	numberSinglePattern = regexp.MustCompile(`\d+`)

	costSegmentPattern = regexp.MustCompile(`([A-Za-z][A-Za-z ./]*?):\s*CHF\s*([\d,']+)(?:\s*[–-]\s*(?:CHF\s*)?([\d,']+))?`)
	bareNumberPattern  = regexp.MustCompile(`[\d][\d,']*`)
)

// ParseLikelihood extracts an integer winning percentage from a baseline
// string. Ranges collapse to their midpoint (rounded down), "100%" is
// capped to 95, "<N%" and hopeless wording anchor at 5, and qualitative
// terms map to fixed anchors. Returns false when nothing parseable is
// found or the string is the Unknown sentinel.
func ParseLikelihood(raw string) (int, bool) {
	if raw == "" || raw == Unknown {
		return 0, false
	}

	if m := percentRangePattern.FindStringSubmatch(raw); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return (low + high) / 2, true
	}

	lower := strings.ToLower(raw)

	// "<10%" must win over the bare percent pattern, which would otherwise
	// read the 10 and miss the qualifier entirely.
	if percentBelowPattern.MatchString(raw) || strings.Contains(lower, "hopeless") {
		return 5, true
	}

	if m := percentSinglePattern.FindStringSubmatch(raw); m != nil {
		pct, _ := strconv.Atoi(m[1])
		if pct >= 100 {
			return certaintyCap, true
		}
		if pct < 1 {
			return 1, true
		}
		return pct, true
	}

	switch {
	case containsAny(lower, "low", "poor", "weak"):
		return 25, true
	case containsAny(lower, "good", "strong"):
		return 65, true
	case containsAny(lower, "moderate", "medium"):
		return 50, true
	}

	return 0, false
}

// ParseTime extracts a structured time estimate from a baseline string.
// Strings may carry several clauses separated by ";" (e.g. "Paid: 30 days;
// Contested: 3–6 months+"); the contested clause wins because proceedings
// default to the contested path. A numeric range becomes its arithmetic
// mean rounded to the nearest integer, and units normalize to plural form.
func ParseTime(raw string) (models.TimeEstimate, bool) {
	if raw == "" || raw == Unknown {
		return models.TimeEstimate{}, false
	}

	clause := raw
	for _, part := range strings.Split(raw, ";") {
		if strings.Contains(strings.ToLower(part), "contested") {
			clause = part
			break
		}
	}

	unit, ok := detectUnit(clause)
	if !ok {
		return models.TimeEstimate{}, false
	}

	if m := numberRangePattern.FindStringSubmatch(clause); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		value := int(math.Round(float64(low+high) / 2.0))
		return models.TimeEstimate{Value: value, Unit: unit}, true
	}

	if m := numberSinglePattern.FindString(clause); m != "" {
		value, _ := strconv.Atoi(m)
		return models.TimeEstimate{Value: value, Unit: unit}, true
	}

	return models.TimeEstimate{}, false
}

func detectUnit(clause string) (models.TimeUnit, bool) {
	lower := strings.ToLower(clause)
	switch {
	case strings.Contains(lower, "month"):
		return models.UnitMonths, true
	case strings.Contains(lower, "week"):
		return models.UnitWeeks, true
	case strings.Contains(lower, "day"):
		return models.UnitDays, true
	}
	return "", false
}

// ParseCost extracts a cost breakdown from a baseline string. Labeled
// "Label: CHF amount" and "Label: CHF low–high" segments are summed
// (ranges averaged) into a total with per-label components. Strings with
// no recognizable segments fall back to the largest bare number found, or
// DefaultCostCHF when there is no number at all. Returns false only for
// the Unknown sentinel.
func ParseCost(raw string) (models.CostBreakdown, bool) {
	if raw == "" || raw == Unknown {
		return models.CostBreakdown{}, false
	}

	var total float64
	components := make(models.CostComponents)

	for _, m := range costSegmentPattern.FindAllStringSubmatch(raw, -1) {
		label := strings.TrimSpace(m[1])
		low := parseAmount(m[2])
		amount := low
		if m[3] != "" {
			high := parseAmount(m[3])
			amount = (low + high) / 2
		}
		if amount < 0 {
			continue
		}
		components[label] = amount
		total += amount
	}

	if len(components) > 0 {
		return models.CostBreakdown{TotalCHF: total, Components: components}, true
	}

	// No labeled segments recognized: take the largest bare number.
	largest := -1.0
	for _, m := range bareNumberPattern.FindAllString(raw, -1) {
		if v := parseAmount(m); v > largest {
			largest = v
		}
	}
	if largest >= 0 {
		return models.CostBreakdown{TotalCHF: largest}, true
	}

	return models.CostBreakdown{TotalCHF: DefaultCostCHF}, true
}

func parseAmount(s string) float64 {
	s = strings.NewReplacer(",", "", "'", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return v
}
