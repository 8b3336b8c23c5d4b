// Package quiz implements the core of the election calculator: the answer
// ledger, the session state machine, and result enrichment.
package quiz

import (
	"context"

	"github.com/mandator-dev/mandator/internal/party"
)

// Choice is a yes/no answer to a question. The zero value means the
// question was skipped.
type Choice string

const (
	ChoiceYes Choice = "YES"
	ChoiceNo  Choice = "NO"
)

// Question is one generated quiz question. IDs are assigned sequentially
// per session in the order the source returned them.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Answer records the user's response to a single question. QuestionText is
// a denormalized copy so a saved answer stays readable after the live
// question list is gone. Reason is kept even while IsImportant is false so
// toggling importance off and on does not lose the typed text.
type Answer struct {
	QuestionID   int    `json:"questionId"`
	QuestionText string `json:"questionText"`
	Choice       Choice `json:"choice,omitempty"`
	IsImportant  bool   `json:"isImportant"`
	Reason       string `json:"reason,omitempty"`
}

// Answered reports whether a yes/no choice has been made.
func (a Answer) Answered() bool {
	return a.Choice != ""
}

// MatchResult is one scored entry as returned by the evaluator, before
// enrichment with roster data.
type MatchResult struct {
	Name            string  `json:"name"`
	MatchPercentage float64 `json:"matchPercentage"`
	Reasoning       string  `json:"reasoning"`
}

// PartyResult is a MatchResult joined with the party's roster record. Every
// field is always populated: when the evaluator names a party missing from
// the roster, the roster-sourced fields take placeholder values.
type PartyResult struct {
	party.Party
	MatchPercentage float64 `json:"matchPercentage"`
	Reasoning       string  `json:"reasoning"`
}

// Match projects a PartyResult back down to its evaluator-sourced fields.
func (r PartyResult) Match() MatchResult {
	return MatchResult{
		Name:            r.Name,
		MatchPercentage: r.MatchPercentage,
		Reasoning:       r.Reasoning,
	}
}

// QuestionSource generates the question set for a session.
type QuestionSource interface {
	GenerateQuestions(ctx context.Context, election party.ElectionInfo) ([]string, error)
}

// Evaluator scores a set of answered questions against the party roster.
// The returned list is expected to be sorted by descending match percentage;
// the session passes it through without re-sorting.
type Evaluator interface {
	EvaluateAnswers(ctx context.Context, answers []Answer, parties []party.Party, election party.ElectionInfo) ([]MatchResult, error)
}
