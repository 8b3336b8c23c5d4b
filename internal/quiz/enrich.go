package quiz

import "github.com/mandator-dev/mandator/internal/party"

// Placeholder values used when the evaluator names a party that is not in
// the roster. Consumers can read every PartyResult field without nil checks.
const placeholderField = "N/A"

// Enricher joins evaluator output with the static party roster by name.
type Enricher struct {
	roster *party.Roster
}

// NewEnricher creates an Enricher over the given roster.
func NewEnricher(roster *party.Roster) *Enricher {
	return &Enricher{roster: roster}
}

// Enrich builds one PartyResult per match, preserving input order. The
// evaluator is contracted to return descending match order; an unsorted
// input is passed through unchanged.
func (e *Enricher) Enrich(matches []MatchResult) []PartyResult {
	results := make([]PartyResult, len(matches))
	for i, m := range matches {
		results[i] = e.enrichOne(m)
	}
	return results
}

// enrichOne assembles a PartyResult field by field. The match's name always
// wins (on a roster hit the two are identical); the roster contributes
// leader, ideology, motto, candidates and summary, or placeholders on a miss.
func (e *Enricher) enrichOne(m MatchResult) PartyResult {
	p, ok := e.roster.Find(m.Name)
	if !ok {
		p = party.Party{
			Leader:     placeholderField,
			Ideology:   placeholderField,
			Motto:      placeholderField,
			Candidates: []string{},
			Summary:    placeholderField,
		}
	}
	p.Name = m.Name
	return PartyResult{
		Party:           p,
		MatchPercentage: m.MatchPercentage,
		Reasoning:       m.Reasoning,
	}
}
