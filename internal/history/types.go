package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
)

// SavedResult is one completed evaluation session as exposed to callers:
// always in the current (enriched) shape, regardless of how old the stored
// record is. Date is the ISO-8601 creation timestamp. Results embed full
// copies of the roster data so history stays valid if the roster changes.
type SavedResult struct {
	ID      string
	Date    string
	Results []quiz.PartyResult
	Answers []quiz.Answer
}

// NewSavedResult stamps a fresh result set with an ID and the current time.
// Only answers with a choice made belong in a saved result; the caller
// passes the ledger's answered export.
func NewSavedResult(results []quiz.PartyResult, answers []quiz.Answer) SavedResult {
	return SavedResult{
		ID:      uuid.New().String(),
		Date:    time.Now().UTC().Format(time.RFC3339),
		Results: results,
		Answers: answers,
	}
}

// savedRecord is the wire form of one history entry. Records written before
// enrichment existed carry bare match triples; the Candidates pointer
// distinguishes the two shapes (nil = pre-enrichment).
type savedRecord struct {
	ID      string         `json:"id,omitempty"`
	Date    string         `json:"date"`
	Results []resultRecord `json:"results"`
	Answers []quiz.Answer  `json:"answers,omitempty"`
}

// resultRecord is the wire form of one result entry, covering both the
// pre-enrichment triple and the enriched shape.
type resultRecord struct {
	Name            string    `json:"name"`
	MatchPercentage float64   `json:"matchPercentage"`
	Reasoning       string    `json:"reasoning"`
	Leader          string    `json:"leader,omitempty"`
	Ideology        string    `json:"ideology,omitempty"`
	Motto           string    `json:"motto,omitempty"`
	Candidates      *[]string `json:"candidates,omitempty"`
	Summary         string    `json:"summary,omitempty"`
}

// enriched reports whether the record was saved after enrichment existed.
// Mirrors the stored data's only structural marker: the presence of the
// candidates field on the first result entry.
func (r savedRecord) enriched() bool {
	return len(r.Results) == 0 || r.Results[0].Candidates != nil
}

// toRecord converts a SavedResult to its wire form. Candidates is always
// non-nil so the record is recognizably enriched.
func toRecord(item SavedResult) savedRecord {
	results := make([]resultRecord, len(item.Results))
	for i, res := range item.Results {
		candidates := res.Candidates
		if candidates == nil {
			candidates = []string{}
		}
		results[i] = resultRecord{
			Name:            res.Name,
			MatchPercentage: res.MatchPercentage,
			Reasoning:       res.Reasoning,
			Leader:          res.Leader,
			Ideology:        res.Ideology,
			Motto:           res.Motto,
			Candidates:      &candidates,
			Summary:         res.Summary,
		}
	}
	return savedRecord{
		ID:      item.ID,
		Date:    item.Date,
		Results: results,
		Answers: item.Answers,
	}
}

// upgrade converts a stored record to the current shape. Enriched records
// map across field for field; pre-enrichment records are re-enriched
// against the current roster. The stored record itself is never rewritten.
func upgrade(rec savedRecord, enricher *quiz.Enricher) SavedResult {
	item := SavedResult{
		ID:      rec.ID,
		Date:    rec.Date,
		Answers: rec.Answers,
	}

	if !rec.enriched() {
		matches := make([]quiz.MatchResult, len(rec.Results))
		for i, r := range rec.Results {
			matches[i] = quiz.MatchResult{
				Name:            r.Name,
				MatchPercentage: r.MatchPercentage,
				Reasoning:       r.Reasoning,
			}
		}
		item.Results = enricher.Enrich(matches)
		return item
	}

	item.Results = make([]quiz.PartyResult, len(rec.Results))
	for i, r := range rec.Results {
		candidates := []string{}
		if r.Candidates != nil {
			candidates = *r.Candidates
		}
		item.Results[i] = quiz.PartyResult{
			Party: party.Party{
				Name:       r.Name,
				Leader:     r.Leader,
				Ideology:   r.Ideology,
				Motto:      r.Motto,
				Candidates: candidates,
				Summary:    r.Summary,
			},
			MatchPercentage: r.MatchPercentage,
			Reasoning:       r.Reasoning,
		}
	}
	return item
}
