package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"casetriage-backend/estimator"
	"casetriage-backend/models"
)

// Statute codes expected in relevant retrieval results, per category.
// Semantic retrieval over a small corpus sometimes returns off-topic
// documents; a result set with no title matching any expected code is
// discarded in favor of the curated fallback documents.
var expectedStatuteCodes = map[models.Category][]string{
	models.CategoryEmployment:     {"SR-220", "Obligationenrecht"},
	models.CategoryRealEstate:     {"SR-210", "ZGB", "Zivilgesetzbuch"},
	models.CategoryTrafficCrimina: {"SR-741", "SR-742", "SVG", "Strassenverkehrsgesetz"},
}

// gatherEvidence queries the law and historic-case collaborators within
// the configured call caps. Every failure path degrades to fallback or
// empty results with an explanation note; this stage never fails the run.
func (p *Pipeline) gatherEvidence(ctx context.Context, state *State) {
	category := state.category()

	lawDocs := p.gatherLaw(ctx, state, category)
	state.LawDocs = lawDocs
	state.SourceDocuments = append(state.SourceDocuments, lawDocs...)

	state.HistoricCases = p.gatherCases(ctx, state, category)
}

func (p *Pipeline) gatherLaw(ctx context.Context, state *State, category models.Category) []models.Doc {
	if p.lawSearcher == nil {
		state.addExplanation("Swiss law documents: data not available (stub)")
		return fallbackLawDocs(category)
	}

	var docs []models.Doc
	calls := 0
	for _, query := range lawQueries(category, state.Subcategory) {
		if calls >= p.policies.MaxLawCalls || len(docs) > 0 {
			break
		}

		calls++
		state.ToolCallCount++
		results, err := p.lawSearcher.SearchLaw(ctx, query, 3)
		if err != nil {
			log.Printf("Warning: law retrieval failed for %q: %v", query, err)
			continue
		}
		docs = append(docs, results...)
	}

	if len(docs) == 0 {
		state.addExplanation("Swiss law documents: data not available (stub)")
		return fallbackLawDocs(category)
	}

	// Relevance check: without at least one title matching an expected
	// statute code the whole result set is considered off-topic.
	if codes, ok := expectedStatuteCodes[category]; ok && !anyTitleMatches(docs, codes) {
		log.Printf("Warning: law retrieval returned no %s documents, substituting curated fallback", category)
		state.addExplanation(fmt.Sprintf("Retrieved law documents did not match %s, curated fallback used", category))
		return fallbackLawDocs(category)
	}

	return docs
}

func (p *Pipeline) gatherCases(ctx context.Context, state *State, category models.Category) []models.HistoricCase {
	if p.caseSearcher == nil {
		state.addExplanation("Historic cases: data not available (stub)")
		return nil
	}

	query := fmt.Sprintf("%s similar case outcomes Switzerland", category)
	calls := 0
	for calls < p.policies.MaxCaseCalls {
		calls++
		state.ToolCallCount++

		cases, err := p.caseSearcher.SearchCases(ctx, query, 3)
		if err != nil {
			log.Printf("Warning: historic case retrieval failed: %v", err)
			continue
		}
		return cases
	}

	state.addExplanation("Historic cases: data not available (stub)")
	return nil
}

// lawQueries engineers retrieval queries per category and detected
// sub-issue, biasing the embedding search toward the governing statute.
func lawQueries(category models.Category, sub estimator.Subcategory) []string {
	switch category {
	case models.CategoryEmployment:
		switch sub {
		case estimator.SubUnpaidWages:
			return []string{"Arbeitsrecht Lohnforderung unpaid wages salary claim Obligationenrecht"}
		case estimator.SubSummaryDismissal, estimator.SubTerminationPoorPerformance, estimator.SubDismissalDuringIllness:
			return []string{"Arbeitsrecht Kündigung termination dismissal employment contract Obligationenrecht"}
		default:
			return []string{"Arbeitsrecht employment law requirements Obligationenrecht SR-220"}
		}
	case models.CategoryTrafficCrimina:
		switch sub {
		case estimator.SubDrivingUnderInfluence, estimator.SubAlcoholPenaltyOrder:
			return []string{"Strassenverkehrsgesetz Fahren in angetrunkenem Zustand alcohol driving SVG"}
		case estimator.SubModerateSpeeding:
			return []string{"Strassenverkehrsgesetz Geschwindigkeitsüberschreitung speeding SVG SR-741"}
		default:
			return []string{"Strassenverkehrsgesetz traffic violation penalty SVG SR-741"}
		}
	case models.CategoryRealEstate:
		return []string{"Immobilienrecht property rental dispute Zivilgesetzbuch SR-210"}
	default:
		return []string{fmt.Sprintf("%s legal requirements case analysis", category)}
	}
}

func anyTitleMatches(docs []models.Doc, codes []string) bool {
	for _, doc := range docs {
		for _, code := range codes {
			if strings.Contains(doc.Title, code) {
				return true
			}
		}
	}
	return false
}

// fallbackLawDocs returns the curated statute summaries substituted when
// retrieval is unavailable or returns off-topic results.
func fallbackLawDocs(category models.Category) []models.Doc {
	switch category {
	case models.CategoryEmployment:
		return []models.Doc{{
			ID:       "fallback-employment-or",
			Title:    "SR-220 Obligationenrecht (Code of Obligations)",
			Snippet:  "Art. 319 ff. OR governs the employment contract. Art. 322 OR obliges the employer to pay the agreed wage. Art. 337 OR permits summary dismissal only for valid reasons; unjustified summary dismissal entitles the employee to compensation. Art. 336c OR protects employees from dismissal during illness within fixed time limits.",
			Citation: "SR-220 Art. 319-362",
		}}
	case models.CategoryTrafficCrimina:
		return []models.Doc{{
			ID:       "fallback-traffic-svg",
			Title:    "SR-741.01 Strassenverkehrsgesetz (Road Traffic Act)",
			Snippet:  "Art. 90 SVG penalizes violations of traffic rules; moderate speeding is sanctioned with fines and license withdrawal under Art. 16a-16c. Art. 91 SVG penalizes driving under the influence; a qualified blood alcohol concentration triggers mandatory license withdrawal. Penalty orders may be contested within 10 days.",
			Citation: "SR-741.01 Art. 90-91",
		}}
	case models.CategoryRealEstate:
		return []models.Doc{{
			ID:       "fallback-realestate-zgb",
			Title:    "SR-210 Zivilgesetzbuch (Civil Code)",
			Snippet:  "Art. 641 ff. ZGB governs ownership of property. Rental relationships are governed by Art. 253 ff. OR including rent adjustment and termination protection. Disputes over property boundaries and servitudes follow Art. 730 ff. ZGB.",
			Citation: "SR-210 Art. 641 ff.",
		}}
	default:
		return nil
	}
}
