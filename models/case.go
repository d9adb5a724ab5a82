package models

// Category is the closed set of legal categories the triage pipeline
// understands. "Andere" is the catch-all bucket for which no numeric
// estimation is attempted.
type Category string

const (
	CategoryEmployment     Category = "Arbeitsrecht"
	CategoryRealEstate     Category = "Immobilienrecht"
	CategoryTrafficCrimina Category = "Strafverkehrsrecht"
	CategoryOther          Category = "Andere"
)

// AllCategories lists every valid category value.
var AllCategories = []Category{
	CategoryEmployment,
	CategoryRealEstate,
	CategoryTrafficCrimina,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CaseMetadata holds optional metadata supplied with a case.
type CaseMetadata struct {
	Language       string `json:"language,omitempty"`        // "de", "fr", "it", "en"
	PreferredUnits string `json:"preferred_units,omitempty"` // "days", "weeks", "months"
	CourtLevel     string `json:"court_level,omitempty"`
	JudgesCount    int    `json:"judges_count,omitempty"`
}

// CaseInput is the immutable input for one analysis invocation.
type CaseInput struct {
	Text     string        `json:"text"`
	Metadata *CaseMetadata `json:"metadata,omitempty"`
}

// CategoryResult is the outcome of case categorization. Instances are
// never mutated; re-classification produces a new result.
type CategoryResult struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"` // in [0, 1]
}

// Doc is a Swiss law document returned by retrieval.
type Doc struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Citation string `json:"citation,omitempty"`
}

// CaseOutcome is the recorded outcome of a historic case.
type CaseOutcome string

const (
	OutcomeWin     CaseOutcome = "win"
	OutcomeLoss    CaseOutcome = "loss"
	OutcomeSettled CaseOutcome = "settled"
)

// HistoricCase is a past case retrieved for comparison.
type HistoricCase struct {
	ID       string      `json:"id"`
	Court    string      `json:"court"`
	Year     int         `json:"year"`
	Summary  string      `json:"summary"`
	Outcome  CaseOutcome `json:"outcome"`
	Citation string      `json:"citation,omitempty"`
}

// TimeUnit is the unit of a time estimate.
type TimeUnit string

const (
	UnitDays   TimeUnit = "days"
	UnitWeeks  TimeUnit = "weeks"
	UnitMonths TimeUnit = "months"
)

// TimeEstimate is a duration estimate. Value is zero only for case types
// that legitimately resolve to no proceedings at all.
type TimeEstimate struct {
	Value int      `json:"value"`
	Unit  TimeUnit `json:"unit"`
}

// Months converts the estimate to months for threshold comparisons.
func (t TimeEstimate) Months() float64 {
	switch t.Unit {
	case UnitDays:
		return float64(t.Value) / 30.0
	case UnitWeeks:
		return float64(t.Value) / 4.0
	default:
		return float64(t.Value)
	}
}

// AgentOutput is the final, schema-validated result of one analysis.
// For the catch-all category likelihood/time/cost are null by design.
type AgentOutput struct {
	Category        string  `json:"category"`
	LikelihoodWin   *string `json:"likelihood_win"`  // e.g. "60%"
	EstimatedTime   *string `json:"estimated_time"`  // e.g. "6 months"
	EstimatedCost   *string `json:"estimated_cost"`  // e.g. "3500 CHF"
	Explanation     string  `json:"explanation"`
	SourceDocuments []Doc   `json:"source_documents"`
	FinalAnswer     *string `json:"final_answer,omitempty"`
}
